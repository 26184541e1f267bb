package mq

import (
	"context"
	"encoding/json"
	"time"

	"ShopPilot/app/api/assistant/internal/svc"
	"ShopPilot/app/dal/chatlog"

	"github.com/segmentio/kafka-go"
)

// PublishChatLogRecord sends a completed session record to Kafka for
// downstream analytics. Uses the shared writer in ServiceContext when
// available, else creates a short-lived writer to publish one message.
// No-op when no broker is configured.
func PublishChatLogRecord(sc *svc.ServiceContext, rec *chatlog.Record) error {
	if len(sc.Config.Kafka.Broker) == 0 || sc.Config.Kafka.ChatLogTopic == "" {
		return nil
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	w := sc.KafkaWriter
	var closer func() error
	if w == nil {
		ww := &kafka.Writer{
			Addr:                   kafka.TCP(sc.Config.Kafka.Broker...),
			Topic:                  sc.Config.Kafka.ChatLogTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		w = ww
		closer = ww.Close
	}
	msg := kafka.Message{Key: []byte(rec.SessionID), Value: body}
	if err := w.WriteMessages(context.Background(), msg); err != nil {
		return err
	}
	if closer != nil {
		_ = closer()
	}
	return nil
}
