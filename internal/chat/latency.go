package chat

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// LatencyResponder is a decorator that holds every reply back for a random
// delay in [lo, hi) to simulate thinking time.
type LatencyResponder struct {
	inner  Responder
	lo, hi time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// WithLatency wraps a Responder with a simulated delay drawn from src.
func WithLatency(r Responder, lo, hi time.Duration, src rand.Source) Responder {
	return &LatencyResponder{inner: r, lo: lo, hi: hi, rng: rand.New(src)}
}

func (l *LatencyResponder) delay() time.Duration {
	span := l.hi - l.lo
	if span <= 0 {
		return l.lo
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lo + time.Duration(l.rng.Int64N(int64(span)))
}

func (l *LatencyResponder) Respond(ctx context.Context, req Request) (Reply, error) {
	wait := l.delay()
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		case <-timer.C:
		}
	}

	reply, err := l.inner.Respond(ctx, req)
	if err != nil {
		return Reply{}, err
	}
	reply.Latency = wait
	return reply, nil
}
