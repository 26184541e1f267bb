package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSONFound     = errors.New("no JSON object found in model output")
	ErrMalformedJSON   = errors.New("malformed JSON in model output")
	ErrMissingField    = errors.New("decision missing required field")
	ErrUnknownCategory = errors.New("selected category not in the closed list")
)

const (
	fieldAnswer           = "Answer"
	fieldReadyToFilter    = "ready_to_filter"
	fieldSelectedCategory = "selected_category"
)

// Decision is the structured outcome extracted from a model reply. It governs
// whether the next step is another clarification question or the
// recommendation pipeline.
type Decision struct {
	Answer           string
	ReadyToFilter    bool
	SelectedCategory string
	RawOutput        string

	present map[string]bool
}

// ParseDecision extracts the first '{' .. last '}' span from raw model text
// and decodes it structurally. Models often wrap the JSON in prose; the span
// extraction tolerates surrounding text but not malformed internals. Semantic
// checks (required fields, category membership) are deferred to Validate.
func ParseDecision(raw string) (*Decision, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w (len=%d)", ErrNoJSONFound, len(raw))
	}
	span := raw[start : end+1]

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	d := &Decision{
		RawOutput: span,
		present:   make(map[string]bool, len(fields)),
	}
	for key, value := range fields {
		var err error
		switch key {
		case fieldAnswer:
			err = decodeField(value, &d.Answer)
		case fieldReadyToFilter:
			err = decodeField(value, &d.ReadyToFilter)
		case fieldSelectedCategory:
			// null means "not yet selected"
			if string(value) != "null" {
				err = decodeField(value, &d.SelectedCategory)
			}
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedJSON, key, err)
		}
		d.present[key] = true
	}
	return d, nil
}

// Validate enforces the decision contract: all three keys present, and when
// the model is ready to filter, a category drawn from the closed set.
func (d *Decision) Validate(categories []string) error {
	for _, key := range []string{fieldAnswer, fieldReadyToFilter, fieldSelectedCategory} {
		if !d.present[key] {
			return fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}
	if !d.ReadyToFilter {
		return nil
	}
	if d.SelectedCategory == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, fieldSelectedCategory)
	}
	for _, name := range categories {
		if name == d.SelectedCategory {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, d.SelectedCategory)
}

func decodeField(raw json.RawMessage, v any) error {
	return json.Unmarshal(raw, v)
}
