package session

import (
	"errors"
	"sync"
	"time"

	"ShopPilot/app/common/snowflake"
	"ShopPilot/app/dal/chatlog"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Feedback is the user's verdict on a conversation.
type Feedback string

const (
	FeedbackNone     Feedback = "none"
	FeedbackPositive Feedback = "positive"
	FeedbackNegative Feedback = "negative"
)

var ErrInvalidFeedback = errors.New("feedback must be one of positive, negative, none")

// Turn is one user-facing conversation message. Immutable once appended.
type Turn struct {
	Role    string
	Content string
}

// TelemetryEntry is a Turn plus the measured latency of the model call that
// produced it. Telemetry is a superset of the conversation: it also records
// injected sub-prompts the user never sees, with zero latency.
type TelemetryEntry struct {
	Turn
	LatencySeconds float64
}

// Session is a single continuous conversation. turns[0] and telemetry[0] are
// always the system seed turn; both sequences are append-only between resets.
type Session struct {
	mu     sync.Mutex
	turnMu sync.Mutex

	id            string
	initialPrompt string
	turns         []Turn
	telemetry     []TelemetryEntry
	feedback      Feedback
	startedAt     time.Time
}

// New seeds a session with the initial instruction prompt.
func New(initialPrompt string) *Session {
	s := &Session{initialPrompt: initialPrompt}
	s.seed()
	return s
}

func (s *Session) seed() {
	seed := Turn{Role: RoleSystem, Content: s.initialPrompt}
	s.id = snowflake.NextString()
	s.turns = []Turn{seed}
	s.telemetry = []TelemetryEntry{{Turn: seed}}
	s.feedback = FeedbackNone
	s.startedAt = time.Now()
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

func (s *Session) Feedback() Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedback
}

// BeginTurn serializes turn handling: one in-flight turn per session,
// concurrent turns queue instead of interleaving the history.
func (s *Session) BeginTurn() { s.turnMu.Lock() }
func (s *Session) EndTurn()   { s.turnMu.Unlock() }

func (s *Session) AddUserMessage(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{Role: RoleUser, Content: text})
}

func (s *Session) AddModelResponse(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Content: text})
}

func (s *Session) AddTelemetry(role, content string, latencySeconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.telemetry = append(s.telemetry, TelemetryEntry{
		Turn:           Turn{Role: role, Content: content},
		LatencySeconds: latencySeconds,
	})
}

// SetFeedback validates and stores the verdict. An invalid value leaves the
// prior feedback untouched.
func (s *Session) SetFeedback(value string) error {
	switch Feedback(value) {
	case FeedbackNone, FeedbackPositive, FeedbackNegative:
	default:
		return ErrInvalidFeedback
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = Feedback(value)
	return nil
}

// Reset truncates turns and telemetry back to the seed entry, regenerates the
// session identity and start time, and clears feedback.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed()
}

// TurnsSnapshot copies the user-facing conversation for a model invocation.
func (s *Session) TurnsSnapshot() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) TelemetrySnapshot() []TelemetryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TelemetryEntry, len(s.telemetry))
	copy(out, s.telemetry)
	return out
}

// BuildLogRecord snapshots the session into an immutable persisted record.
// The latency average covers assistant-role telemetry entries only; with no
// assistant entries it is 0.0 (a session may be reset before any model call
// completes).
func (s *Session) BuildLogRecord() *chatlog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		userTurns  int
		agentTurns int
		latencySum float64
		history    = make([]chatlog.TelemetryEntry, 0, len(s.telemetry))
	)
	for _, entry := range s.telemetry {
		switch entry.Role {
		case RoleUser:
			userTurns++
		case RoleAssistant:
			agentTurns++
			latencySum += entry.LatencySeconds
		}
		history = append(history, chatlog.TelemetryEntry{
			Role:           entry.Role,
			Content:        entry.Content,
			LatencySeconds: entry.LatencySeconds,
		})
	}

	var avgLatency float64
	if agentTurns > 0 {
		avgLatency = latencySum / float64(agentTurns)
	}

	return &chatlog.Record{
		SessionID:             s.id,
		TimestampStart:        s.startedAt.Format(time.RFC3339),
		TimestampEnd:          time.Now().Format(time.RFC3339),
		TotalMessages:         len(s.telemetry),
		UserTurns:             userTurns,
		AgentTurns:            agentTurns,
		UserFeedback:          string(s.feedback),
		AverageLatencySeconds: avgLatency,
		ConversationHistory:   history,
	}
}
