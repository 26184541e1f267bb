package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"ShopPilot/app/api/assistant/internal/session"
	"ShopPilot/app/dal/catalog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatModel replays scripted replies and records every invocation.
type fakeChatModel struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   [][]*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, input)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return nil, errors.New("no scripted reply left")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return schema.AssistantMessage(reply, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func newTestAgent(t *testing.T, fake *fakeChatModel) (*Agent, *session.Session) {
	t.Helper()
	cat := catalog.MustNewCatalogModel()
	a := NewAgent(context.Background(), fake, cat, 5*time.Second)
	sess := session.New(BuildInitialPrompt(cat.ProductKeys(), cat.Categories()))
	return a, sess
}

func TestHandleUserTurnClarification(t *testing.T) {
	fake := &fakeChatModel{replies: []string{
		`{"Answer":"What will you mainly use it for?","ready_to_filter":false,"selected_category":null}`,
	}}
	a, sess := newTestAgent(t, fake)

	answer, isRecommendation, err := a.HandleUserTurn(context.Background(), sess, "I need a laptop")
	require.NoError(t, err)
	assert.False(t, isRecommendation)
	assert.Equal(t, "What will you mainly use it for?", answer)

	turns := sess.TurnsSnapshot()
	require.Len(t, turns, 3)
	assert.Equal(t, session.RoleUser, turns[1].Role)
	assert.Equal(t, session.RoleAssistant, turns[2].Role)
	assert.Equal(t, answer, turns[2].Content)

	// user message + raw model reply on top of the seed
	telemetry := sess.TelemetrySnapshot()
	require.Len(t, telemetry, 3)
	assert.Zero(t, telemetry[1].LatencySeconds)
	assert.Contains(t, telemetry[2].Content, `"ready_to_filter"`)

	require.Len(t, fake.calls, 1)
	assert.Len(t, fake.calls[0], 2, "seed system turn plus user turn")
}

func TestHandleUserTurnRecommendation(t *testing.T) {
	const recommendation = "I recommend the Dell XPS 15 9530 because it balances color accuracy and portability."
	fake := &fakeChatModel{replies: []string{
		`{"Answer":"Got it, filtering now.","ready_to_filter":true,"selected_category":"Creator Laptops"}`,
		"- needs a laptop for video editing",
		recommendation,
	}}
	a, sess := newTestAgent(t, fake)

	answer, isRecommendation, err := a.HandleUserTurn(context.Background(), sess, "I need a laptop for video editing")
	require.NoError(t, err)
	assert.True(t, isRecommendation)
	assert.Equal(t, recommendation, answer)

	turns := sess.TurnsSnapshot()
	require.Len(t, turns, 3)
	assert.Equal(t, recommendation, turns[2].Content)

	require.Len(t, fake.calls, 3)

	// summarize stage: one synthetic system turn built from the transcript
	summaryCall := fake.calls[1]
	require.Len(t, summaryCall, 1)
	assert.Equal(t, schema.System, summaryCall[0].Role)
	assert.Contains(t, summaryCall[0].Content, "user: I need a laptop for video editing")

	// recommend stage: prompt carries the summary and the category's products
	recommendCall := fake.calls[2]
	require.Len(t, recommendCall, 1)
	assert.Contains(t, recommendCall[0].Content, "needs a laptop for video editing")
	assert.Contains(t, recommendCall[0].Content, "XPS-9530")

	// seed, user, raw decision, summary sub-prompt, summary, rec sub-prompt, rec
	telemetry := sess.TelemetrySnapshot()
	require.Len(t, telemetry, 7)
	assert.Equal(t, session.RoleSystem, telemetry[3].Role)
	assert.Zero(t, telemetry[3].LatencySeconds)
	assert.Equal(t, session.RoleAssistant, telemetry[6].Role)
}

func TestHandleUserTurnParseFailureLeavesTurnsIntact(t *testing.T) {
	fake := &fakeChatModel{replies: []string{"you should buy a gaming laptop"}}
	a, sess := newTestAgent(t, fake)

	_, _, err := a.HandleUserTurn(context.Background(), sess, "help me pick")
	require.ErrorIs(t, err, ErrNoJSONFound)

	turns := sess.TurnsSnapshot()
	require.Len(t, turns, 2, "no assistant turn on parse failure")
	assert.Equal(t, session.RoleUser, turns[1].Role)

	// the raw reply stays in telemetry as the audit trail
	telemetry := sess.TelemetrySnapshot()
	require.Len(t, telemetry, 3)
	assert.Equal(t, "you should buy a gaming laptop", telemetry[2].Content)
}

func TestHandleUserTurnTransportFailure(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("connection refused")}
	a, sess := newTestAgent(t, fake)

	_, _, err := a.HandleUserTurn(context.Background(), sess, "hello")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "model invocation"))

	require.Len(t, sess.TurnsSnapshot(), 2)
	require.Len(t, sess.TelemetrySnapshot(), 2, "no assistant telemetry without a reply")
}

func TestHandleUserTurnUnknownCategory(t *testing.T) {
	fake := &fakeChatModel{replies: []string{
		`{"Answer":"ready","ready_to_filter":true,"selected_category":"Flying Machines"}`,
	}}
	a, sess := newTestAgent(t, fake)

	_, _, err := a.HandleUserTurn(context.Background(), sess, "I need something")
	require.ErrorIs(t, err, ErrUnknownCategory)
	require.Len(t, sess.TurnsSnapshot(), 2)
}

func TestHandleUserTurnMissingDecisionField(t *testing.T) {
	fake := &fakeChatModel{replies: []string{`{"Answer":"hi"}`}}
	a, sess := newTestAgent(t, fake)

	_, _, err := a.HandleUserTurn(context.Background(), sess, "hi")
	require.ErrorIs(t, err, ErrMissingField)
}

func TestHandleUserTurnNilModel(t *testing.T) {
	cat := catalog.MustNewCatalogModel()
	a := NewAgent(context.Background(), nil, cat, time.Second)
	sess := session.New("prompt")

	_, _, err := a.HandleUserTurn(context.Background(), sess, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat model unavailable")
}
