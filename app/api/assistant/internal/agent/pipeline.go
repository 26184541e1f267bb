package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ShopPilot/app/api/assistant/internal/session"
	"ShopPilot/app/dal/catalog"
)

// recommend is the two-stage pipeline behind a ready-to-filter decision:
// summarize the conversation into a bounded requirement statement, then
// combine it with the category's products for the final recommendation. The
// summary step keeps the final prompt's size independent of how long the
// conversation ran. Both sub-prompts are recorded as zero-latency telemetry,
// each model reply with its measured latency.
func (a *Agent) recommend(ctx context.Context, sess *session.Session, category string) (string, error) {
	summary, err := a.summarize(ctx, sess)
	if err != nil {
		return "", fmt.Errorf("summarize conversation: %w", err)
	}

	products := a.catalog.ProductsByCategory(category)
	prompt := fmt.Sprintf(recommendationTemplate, summary, formatProducts(products))

	sess.AddTelemetry(session.RoleSystem, prompt, 0)
	reply, latency, err := a.generateFromPrompt(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate recommendation: %w", err)
	}
	sess.AddTelemetry(session.RoleAssistant, reply, latency)
	return reply, nil
}

func (a *Agent) summarize(ctx context.Context, sess *session.Session) (string, error) {
	turns := sess.TurnsSnapshot()

	var sb strings.Builder
	for i, t := range turns {
		if i == 0 {
			// seed system turn is not part of the transcript
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(t.Role)
		sb.WriteString(": ")
		sb.WriteString(t.Content)
	}

	prompt := fmt.Sprintf(conversationSummaryTemplate, sb.String())
	sess.AddTelemetry(session.RoleSystem, prompt, 0)
	summary, latency, err := a.generateFromPrompt(ctx, prompt)
	if err != nil {
		return "", err
	}
	sess.AddTelemetry(session.RoleAssistant, summary, latency)
	return summary, nil
}

// formatProducts renders each record as one compact JSON line for the
// recommendation prompt.
func formatProducts(products []catalog.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		body, err := json.Marshal(p)
		if err != nil {
			continue
		}
		lines = append(lines, string(body))
	}
	return strings.Join(lines, "\n")
}
