package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserverFiresOnce(t *testing.T) {
	o := NewObserver(BlockThreshold)
	o.Observe("hero")

	assert.False(t, o.Intersect("hero", 0))
	assert.False(t, o.Intersect("hero", 0.1))
	assert.True(t, o.Intersect("hero", 0.12))
	assert.False(t, o.Intersect("hero", 1))
	assert.False(t, o.Observing("hero"))
}

func TestObserverIgnoresUnobserved(t *testing.T) {
	o := NewObserver(0.5)
	assert.False(t, o.Intersect("features", 1))
}

func TestObserverDisconnect(t *testing.T) {
	o := NewObserver(0.5)
	o.Observe("a")
	o.Observe("b")
	assert.True(t, o.Intersect("a", 0.6))

	o.Disconnect()
	assert.False(t, o.Intersect("b", 1))
	assert.False(t, o.Observing("b"))
}

func TestVisibleRatio(t *testing.T) {
	tests := []struct {
		name                       string
		top, height, vTop, vHeight int
		want                       float64
	}{
		{"fully inside", 2, 4, 0, 10, 1},
		{"below window", 20, 4, 0, 10, 0},
		{"above window", 0, 4, 10, 10, 0},
		{"half below", 8, 4, 0, 10, 0.5},
		{"quarter above", 0, 4, 3, 10, 0.25},
		{"taller than window", 0, 20, 5, 10, 0.5},
		{"zero height", 0, 0, 0, 10, 0},
		{"touching edge", 10, 4, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VisibleRatio(tt.top, tt.height, tt.vTop, tt.vHeight), 1e-9)
		})
	}
}

func TestSchedule(t *testing.T) {
	steps := Schedule([]string{"94%", "3.2×", "50+", "12k+"})
	require.Len(t, steps, 4)

	ms := time.Millisecond
	want := []struct {
		fade, swap time.Duration
	}{
		{0, 200 * ms},
		{80 * ms, 380 * ms},
		{160 * ms, 560 * ms},
		{240 * ms, 740 * ms},
	}
	for i, w := range want {
		assert.Equal(t, w.fade, steps[i].FadeAt, "step %d fade", i)
		assert.Equal(t, w.swap, steps[i].SwapAt, "step %d swap", i)
	}
	assert.Equal(t, "12k+", steps[3].Text)
	assert.Equal(t, 740*ms, Last(steps))
}

func TestStepStateAt(t *testing.T) {
	s := Step{FadeAt: 80 * time.Millisecond, SwapAt: 380 * time.Millisecond}
	assert.Equal(t, StatInitial, s.StateAt(0))
	assert.Equal(t, StatFading, s.StateAt(80*time.Millisecond))
	assert.Equal(t, StatFading, s.StateAt(379*time.Millisecond))
	assert.Equal(t, StatFinal, s.StateAt(380*time.Millisecond))
}

func TestStatCounterRunsOnce(t *testing.T) {
	c := NewStatCounter([]string{"94%", "3.2×"})
	assert.False(t, c.Fired())

	assert.Nil(t, c.Intersect(0.3))
	steps := c.Intersect(0.5)
	require.Len(t, steps, 2)
	assert.True(t, c.Fired())

	assert.Nil(t, c.Intersect(1))
}
