package chat

import (
	"context"
	"strings"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
)

// Rule names reported alongside replies that do not come from a keyword rule.
const (
	RuleCanned   = "canned"
	RuleFallback = "fallback"
)

// Request is one user message to answer.
type Request struct {
	Text        string
	QuickPrompt bool
}

// Reply is the counselor's answer.
type Reply struct {
	Text    string
	Rule    string
	Latency time.Duration
}

// Responder produces replies. Decorators wrap it the same way the event log
// and latency layers stack.
type Responder interface {
	Respond(ctx context.Context, req Request) (Reply, error)
}

// CannedResponder answers from the catalogue: exact question matches first,
// then keyword rules in order, then the generic fallback.
type CannedResponder struct {
	canned   map[string]string
	rules    []catalog.Rule
	fallback string
}

// NewCannedResponder builds a responder from the catalogue's chat content.
func NewCannedResponder(c catalog.ChatContent) *CannedResponder {
	canned := make(map[string]string, len(c.Canned))
	for _, qa := range c.Canned {
		canned[qa.Question] = qa.Answer
	}
	return &CannedResponder{canned: canned, rules: c.Rules, fallback: c.Fallback}
}

// Resolve returns the reply text for text and the name of the rule that
// produced it. Canned questions match exactly; keywords match as substrings
// of the lowercased text.
func (r *CannedResponder) Resolve(text string) (string, string) {
	if answer, ok := r.canned[text]; ok {
		return answer, RuleCanned
	}

	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Reply, rule.Name
			}
		}
	}
	return r.fallback, RuleFallback
}

func (r *CannedResponder) Respond(_ context.Context, req Request) (Reply, error) {
	text, rule := r.Resolve(req.Text)
	return Reply{Text: text, Rule: rule}, nil
}
