package svc

import (
	"context"
	"time"

	"ShopPilot/app/api/assistant/internal/agent"
	"ShopPilot/app/api/assistant/internal/config"
	"ShopPilot/app/api/assistant/internal/session"
	"ShopPilot/app/dal/catalog"
	"ShopPilot/app/dal/chatlog"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config config.Config

	Catalog     catalog.CatalogModel
	Sessions    *session.Store
	Agent       *agent.Agent
	ChatLog     chatlog.ChatLogModel
	KafkaWriter *kafka.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	cat := catalog.MustNewCatalogModel()
	initialPrompt := agent.BuildInitialPrompt(cat.ProductKeys(), cat.Categories())

	sc := &ServiceContext{
		Config:   c,
		Catalog:  cat,
		Sessions: session.NewStore(initialPrompt),
		ChatLog:  chatlog.NewChatLogModel(c.ChatLog.Path),
	}

	timeout := time.Duration(c.ChatModel.TimeoutSeconds) * time.Second

	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
		sc.Agent = agent.NewAgent(context.Background(), nil, cat, timeout)
	} else {
		sc.Agent = agent.NewAgent(context.Background(), cm, cat, timeout)
		logx.Infow("ark chat model initialized")
	}

	if len(c.Kafka.Broker) > 0 && c.Kafka.ChatLogTopic != "" {
		sc.KafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(c.Kafka.Broker...),
			Topic:                  c.Kafka.ChatLogTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		logx.Infow("kafka chat log publisher enabled",
			logx.Field("topic", c.Kafka.ChatLogTopic))
	}

	return sc
}
