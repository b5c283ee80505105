package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/motionfolio/internal/schedule"
)

func newTracker(t *testing.T, onChange func(State)) (*Tracker, *schedule.Manual) {
	t.Helper()
	m := schedule.NewManual()
	tr := NewTracker(Options{
		Scheduler:      m,
		TooltipDelay:   2000 * time.Millisecond,
		TooltipTimeout: 7000 * time.Millisecond,
		OnChange:       onChange,
	})
	t.Cleanup(tr.Close)
	return tr, m
}

func TestTooltipShowsThenHides(t *testing.T) {
	tr, m := newTracker(t, nil)
	tr.Mount()

	m.Advance(1999 * time.Millisecond)
	assert.False(t, tr.Snapshot().TooltipVisible)
	m.Advance(time.Millisecond)
	assert.True(t, tr.Snapshot().TooltipVisible)

	m.Advance(4999 * time.Millisecond)
	assert.True(t, tr.Snapshot().TooltipVisible)
	m.Advance(time.Millisecond)
	assert.False(t, tr.Snapshot().TooltipVisible)
	assert.Equal(t, 0, m.Pending())
}

func TestPointerBeforeDelaySuppressesTooltip(t *testing.T) {
	tr, m := newTracker(t, nil)
	tr.Mount()

	m.Advance(500 * time.Millisecond)
	tr.Pointer(10, 20)
	m.Advance(10 * time.Second)

	s := tr.Snapshot()
	assert.True(t, s.Interacted)
	assert.False(t, s.TooltipVisible)
}

func TestPointerDismissesVisibleTooltip(t *testing.T) {
	tr, m := newTracker(t, nil)
	tr.Mount()
	m.Advance(3 * time.Second)
	require.True(t, tr.Snapshot().TooltipVisible)

	tr.Pointer(1, 1)
	assert.False(t, tr.Snapshot().TooltipVisible)
	assert.True(t, tr.Snapshot().Interacted)

	tr.Pointer(2, 2)
	assert.True(t, tr.Snapshot().Interacted, "interaction flag never flips back")
}

func TestMountTwiceSchedulesOnce(t *testing.T) {
	tr, m := newTracker(t, nil)
	tr.Mount()
	tr.Mount()
	assert.Equal(t, 2, m.Pending())
}

func TestCloseCancelsTooltipTimers(t *testing.T) {
	tr, m := newTracker(t, func(State) { t.Fatal("update after close") })
	tr.Mount()
	tr.Close()

	assert.Equal(t, 0, m.Pending())
	m.Advance(10 * time.Second)
	tr.Pointer(5, 5)
	tr.Scroll(100)
	assert.Equal(t, State{}, tr.Snapshot())
}

func TestOrbs(t *testing.T) {
	s := State{PointerX: 1000, PointerY: 500, ScrollY: 100}
	orbs := s.Orbs()

	assert.InDelta(t, 10.0, orbs[0].Left, 1e-9)
	assert.InDelta(t, 5.0, orbs[0].Top, 1e-9)
	assert.InDelta(t, 15.0, orbs[1].Right, 1e-9)
	assert.InDelta(t, 8.0, orbs[1].Bottom, 1e-9)
	assert.InDelta(t, 5.0, orbs[2].TranslateX, 1e-9)
	assert.InDelta(t, 2.5, orbs[2].TranslateY, 1e-9)
	for _, o := range orbs {
		assert.Equal(t, 1.0, o.Scale)
	}

	s.Interacted = true
	orbs = s.Orbs()
	assert.Equal(t, 1.2, orbs[0].Scale)
	assert.Equal(t, 1.1, orbs[1].Scale)
	assert.Equal(t, 1.3, orbs[2].Scale)
}

func TestScrollProgress(t *testing.T) {
	cases := []struct {
		name  string
		state State
		want  float64
	}{
		{"unmeasured", State{ScrollY: 300}, 0},
		{"not scrollable", State{ScrollY: 0, ScrollHeight: 800, ViewportHeight: 800}, 0},
		{"halfway", State{ScrollY: 600, ScrollHeight: 2000, ViewportHeight: 800}, 50},
		{"clamped", State{ScrollY: 1500, ScrollHeight: 2000, ViewportHeight: 800}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.state.ScrollProgress(), 1e-9)
		})
	}
}

func TestMeasureAndScrollNotifyOnChange(t *testing.T) {
	var updates int
	tr, _ := newTracker(t, func(State) { updates++ })

	tr.Measure(2000, 800)
	tr.Measure(2000, 800)
	tr.Scroll(600)
	tr.Scroll(600)

	assert.Equal(t, 2, updates)
	assert.InDelta(t, 50.0, tr.Snapshot().ScrollProgress(), 1e-9)
}
