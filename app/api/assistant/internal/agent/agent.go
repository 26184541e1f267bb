package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ShopPilot/app/api/assistant/internal/session"
	"ShopPilot/app/dal/catalog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Agent drives the turn-taking protocol: it sends the session history to the
// model, parses the structured decision, and branches into clarification or
// the recommendation pipeline, recording telemetry with timing at each call.
type Agent struct {
	log     logx.Logger
	model   model.BaseChatModel
	catalog catalog.CatalogModel
	timeout time.Duration
}

func NewAgent(ctx context.Context, chatModel model.BaseChatModel, cat catalog.CatalogModel, timeout time.Duration) *Agent {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Agent{
		log:     logx.WithContext(ctx),
		model:   chatModel,
		catalog: cat,
		timeout: timeout,
	}
}

// HandleUserTurn runs one conversation turn. The returned bool reports whether
// the reply is a final recommendation. Any model or parse failure aborts the
// turn without appending an assistant turn; the user telemetry entry written
// in step 1 stays as the audit trail.
func (a *Agent) HandleUserTurn(ctx context.Context, sess *session.Session, text string) (string, bool, error) {
	sess.BeginTurn()
	defer sess.EndTurn()

	sess.AddUserMessage(text)
	sess.AddTelemetry(session.RoleUser, text, 0)

	reply, latency, err := a.generateFromTurns(ctx, sess.TurnsSnapshot())
	if err != nil {
		return "", false, fmt.Errorf("model invocation: %w", err)
	}
	a.log.Debugf("raw model answer: %s", reply)
	sess.AddTelemetry(session.RoleAssistant, reply, latency)

	decision, err := ParseDecision(reply)
	if err != nil {
		return "", false, err
	}
	if err := decision.Validate(a.catalog.Categories()); err != nil {
		return "", false, err
	}

	if !decision.ReadyToFilter {
		sess.AddModelResponse(decision.Answer)
		return decision.Answer, false, nil
	}

	a.log.Infof("category selected, building recommendation: %s", decision.SelectedCategory)
	recommendation, err := a.recommend(ctx, sess, decision.SelectedCategory)
	if err != nil {
		return "", false, err
	}
	sess.AddModelResponse(recommendation)
	return recommendation, true, nil
}

func (a *Agent) generateFromTurns(ctx context.Context, turns []session.Turn) (string, float64, error) {
	messages := make([]*schema.Message, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case session.RoleSystem:
			messages = append(messages, schema.SystemMessage(t.Content))
		case session.RoleUser:
			messages = append(messages, schema.UserMessage(t.Content))
		case session.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(t.Content, nil))
		}
	}
	return a.generate(ctx, messages)
}

// generateFromPrompt invokes the model with a single synthetic system turn,
// used by the pipeline sub-prompts.
func (a *Agent) generateFromPrompt(ctx context.Context, prompt string) (string, float64, error) {
	return a.generate(ctx, []*schema.Message{schema.SystemMessage(prompt)})
}

func (a *Agent) generate(ctx context.Context, messages []*schema.Message) (string, float64, error) {
	if a.model == nil {
		return "", 0, errors.New("chat model unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	reply, err := a.model.Generate(ctx, messages)
	elapsed := time.Since(start)
	a.log.Infof("model generate took %s", elapsed)
	if err != nil {
		return "", elapsed.Seconds(), err
	}
	if reply == nil {
		return "", elapsed.Seconds(), errors.New("model returned empty message")
	}
	return reply.Content, elapsed.Seconds(), nil
}
