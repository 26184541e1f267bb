package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrompt = "You are a shopping assistant."

func TestNewSessionSeed(t *testing.T) {
	s := New(testPrompt)

	turns := s.TurnsSnapshot()
	telemetry := s.TelemetrySnapshot()
	require.Len(t, turns, 1)
	require.Len(t, telemetry, 1)
	assert.Equal(t, Turn{Role: RoleSystem, Content: testPrompt}, turns[0])
	assert.Equal(t, turns[0], telemetry[0].Turn)
	assert.Zero(t, telemetry[0].LatencySeconds)
	assert.Equal(t, FeedbackNone, s.Feedback())
	assert.NotEmpty(t, s.ID())
}

func TestSessionAppendAndReset(t *testing.T) {
	s := New(testPrompt)
	firstID := s.ID()

	s.AddUserMessage("I need a laptop")
	s.AddTelemetry(RoleUser, "I need a laptop", 0)
	s.AddModelResponse("What will you use it for?")
	s.AddTelemetry(RoleAssistant, "What will you use it for?", 1.5)
	require.NoError(t, s.SetFeedback("positive"))

	require.Len(t, s.TurnsSnapshot(), 3)
	require.Len(t, s.TelemetrySnapshot(), 3)

	s.Reset()

	turns := s.TurnsSnapshot()
	telemetry := s.TelemetrySnapshot()
	require.Len(t, turns, 1)
	require.Len(t, telemetry, 1)
	assert.Equal(t, Turn{Role: RoleSystem, Content: testPrompt}, turns[0])
	assert.Equal(t, turns[0], telemetry[0].Turn)
	assert.Equal(t, FeedbackNone, s.Feedback())
	assert.NotEqual(t, firstID, s.ID(), "reset must regenerate the session id")
}

func TestSessionRepeatedResetKeepsSeedInvariant(t *testing.T) {
	s := New(testPrompt)
	seen := map[string]bool{s.ID(): true}

	for i := 0; i < 5; i++ {
		s.AddUserMessage("hello")
		s.Reset()

		turns := s.TurnsSnapshot()
		require.Len(t, turns, 1)
		assert.Equal(t, RoleSystem, turns[0].Role)
		assert.Equal(t, testPrompt, turns[0].Content)

		id := s.ID()
		assert.False(t, seen[id], "session id %q reused", id)
		seen[id] = true
	}
}

func TestSetFeedbackValidation(t *testing.T) {
	s := New(testPrompt)

	require.NoError(t, s.SetFeedback("positive"))
	assert.Equal(t, FeedbackPositive, s.Feedback())

	err := s.SetFeedback("sideways")
	require.ErrorIs(t, err, ErrInvalidFeedback)
	assert.Equal(t, FeedbackPositive, s.Feedback(), "invalid value must not clobber prior feedback")

	require.NoError(t, s.SetFeedback("negative"))
	require.NoError(t, s.SetFeedback("none"))
	assert.Equal(t, FeedbackNone, s.Feedback())
}

func TestBuildLogRecordAveragesAssistantLatencyOnly(t *testing.T) {
	s := New(testPrompt)
	s.AddTelemetry(RoleAssistant, "a question", 2.0)
	s.AddTelemetry(RoleUser, "an answer", 0)

	rec := s.BuildLogRecord()
	assert.Equal(t, 3, rec.TotalMessages)
	assert.Equal(t, 1, rec.UserTurns)
	assert.Equal(t, 1, rec.AgentTurns)
	assert.Equal(t, 2.0, rec.AverageLatencySeconds)
	assert.Equal(t, "none", rec.UserFeedback)
	require.Len(t, rec.ConversationHistory, 3)
	assert.Equal(t, RoleSystem, rec.ConversationHistory[0].Role)
}

func TestBuildLogRecordWithoutAssistantEntries(t *testing.T) {
	s := New(testPrompt)
	s.AddTelemetry(RoleUser, "hello", 0)

	rec := s.BuildLogRecord()
	assert.Zero(t, rec.AverageLatencySeconds)
	assert.Equal(t, 0, rec.AgentTurns)
}

func TestBuildLogRecordDoesNotMutateSession(t *testing.T) {
	s := New(testPrompt)
	s.AddTelemetry(RoleAssistant, "hi", 1.0)

	before := len(s.TelemetrySnapshot())
	rec := s.BuildLogRecord()
	rec.ConversationHistory[0].Content = "tampered"

	telemetry := s.TelemetrySnapshot()
	assert.Len(t, telemetry, before)
	assert.Equal(t, testPrompt, telemetry[0].Content)
}

func TestStoreDefaultAndLookup(t *testing.T) {
	st := NewStore(testPrompt)

	def := st.Get("")
	require.NotNil(t, def)
	assert.Same(t, def, st.Get(def.ID()))
	assert.Nil(t, st.Get("no-such-session"))
}

func TestStoreCreateAndReset(t *testing.T) {
	st := NewStore(testPrompt)

	s := st.Create()
	oldID := s.ID()
	require.Same(t, s, st.Get(oldID))

	st.Reset(s)
	assert.Nil(t, st.Get(oldID), "stale id must not resolve after reset")
	require.Same(t, s, st.Get(s.ID()))
}
