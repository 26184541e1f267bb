package chatlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// TelemetryEntry is the persisted form of one audit entry: a conversation
// turn plus the wall-clock latency of the model call that produced it
// (0 for entries that never hit the model).
type TelemetryEntry struct {
	Role           string  `json:"role"`
	Content        string  `json:"content"`
	LatencySeconds float64 `json:"latency_seconds"`
}

// Record summarizes one completed or reset session. Records are append-only:
// one JSON object per line, never rewritten in place.
type Record struct {
	SessionID             string           `json:"session_id"`
	TimestampStart        string           `json:"timestamp_start"`
	TimestampEnd          string           `json:"timestamp_end"`
	TotalMessages         int              `json:"total_messages"`
	UserTurns             int              `json:"user_turns"`
	AgentTurns            int              `json:"agent_turns"`
	UserFeedback          string           `json:"user_feedback"`
	AverageLatencySeconds float64          `json:"average_latency_seconds"`
	ConversationHistory   []TelemetryEntry `json:"conversation_history"`
}

var _ ChatLogModel = (*defaultChatLogModel)(nil)

type (
	// ChatLogModel persists session records to a durable newline-delimited
	// JSON log and reads them back for aggregation.
	ChatLogModel interface {
		Insert(ctx context.Context, rec *Record) error
		FindAll(ctx context.Context) ([]*Record, error)
	}

	defaultChatLogModel struct {
		path string
	}
)

// NewChatLogModel returns a model backed by the NDJSON file at path. The file
// is created on first insert.
func NewChatLogModel(path string) ChatLogModel {
	return &defaultChatLogModel{path: path}
}

// Insert appends one record. The file is opened and closed per write; there is
// no cross-process locking, concurrent appenders must be serialized upstream.
func (m *defaultChatLogModel) Insert(_ context.Context, rec *Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal chat log record: %w", err)
	}

	f, err := os.OpenFile(m.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open chat log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("append chat log: %w", err)
	}
	return nil
}

// FindAll reads every parseable record in file order. A missing file yields an
// empty result; unparseable lines are skipped rather than failing the read.
func (m *defaultChatLogModel) FindAll(_ context.Context) ([]*Record, error) {
	f, err := os.Open(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open chat log: %w", err)
	}
	defer f.Close()

	var records []*Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("scan chat log: %w", err)
	}
	return records, nil
}
