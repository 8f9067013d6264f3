package chat

import (
	"context"
	"time"

	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/store"
)

// EventResponder is a decorator that records every reply as a chat event.
// Only the rule and timing are stored, never the message text.
type EventResponder struct {
	inner     Responder
	eventRepo store.EventRepo
	sessionID string
	log       *logging.Logger
}

// WithEvents wraps a Responder with event logging. A nil repo only logs.
func WithEvents(r Responder, repo store.EventRepo, sessionID string, log *logging.Logger) Responder {
	if log == nil {
		log = logging.Nop()
	}
	return &EventResponder{inner: r, eventRepo: repo, sessionID: sessionID, log: log}
}

func (e *EventResponder) Respond(ctx context.Context, req Request) (Reply, error) {
	start := time.Now()
	reply, err := e.inner.Respond(ctx, req)
	if err != nil {
		e.log.Debug("chat reply aborted", "session_id", e.sessionID, "error", err)
		return reply, err
	}

	latency := reply.Latency
	if latency == 0 {
		latency = time.Since(start)
	}
	e.log.Info("chat reply", "session_id", e.sessionID, "rule", reply.Rule, "quick_prompt", req.QuickPrompt)

	data := store.ChatEventData{
		SessionID:   e.sessionID,
		Rule:        reply.Rule,
		QuickPrompt: req.QuickPrompt,
		LatencyMs:   latency.Milliseconds(),
	}
	if e.eventRepo == nil {
		return reply, nil
	}
	// Log the event but don't fail the reply if logging fails.
	if logErr := e.eventRepo.AppendChatEvent(ctx, data); logErr != nil {
		e.log.Warn("failed to log chat event", "error", logErr)
	}
	return reply, nil
}
