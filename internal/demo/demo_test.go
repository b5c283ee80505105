package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/motionfolio/internal/schedule"
)

const (
	tick = 30 * time.Millisecond
	hold = 3000 * time.Millisecond
)

func newDemo(t *testing.T, onChange func(State)) (*Demo, *schedule.Manual) {
	t.Helper()
	m := schedule.NewManual()
	d := New(ProgressCelebration, Options{
		Scheduler: m,
		Tick:      tick,
		Step:      3,
		Markers:   8,
		Stagger:   200 * time.Millisecond,
		Hold:      hold,
		Rand:      func() float64 { return 0.5 },
		OnChange:  onChange,
	})
	t.Cleanup(d.Close)
	return d, m
}

func TestRunReachesExactlyMax(t *testing.T) {
	var seen []int
	d, m := newDemo(t, func(s State) { seen = append(seen, s.Progress) })

	require.True(t, d.Start())
	for d.Snapshot().Phase == Running {
		m.Advance(tick)
	}

	s := d.Snapshot()
	assert.Equal(t, Completed, s.Phase)
	assert.Equal(t, Max, s.Progress)
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1], "progress never decreases")
		assert.LessOrEqual(t, seen[i], Max)
	}
	// 33 steps of 3 reach 99, the 34th clamps to 100
	assert.Equal(t, 34*tick, m.Now())
	assert.Equal(t, 1, m.Pending(), "only the celebration clear remains")
}

func TestTickCancelledAtCompletion(t *testing.T) {
	ticks := 0
	d, m := newDemo(t, func(s State) {
		if s.Phase != Idle {
			ticks++
		}
	})
	require.True(t, d.Start())
	m.Advance(34 * tick)
	require.Equal(t, Completed, d.Snapshot().Phase)
	notified := ticks

	m.Advance(hold - time.Millisecond)
	assert.Equal(t, notified, ticks, "no tick fires after completion")
	assert.Equal(t, Max, d.Snapshot().Progress)
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	d, m := newDemo(t, nil)
	require.True(t, d.Start())
	m.Advance(5 * tick)
	before := d.Snapshot()

	assert.False(t, d.Start())
	assert.False(t, d.Primary())
	assert.Equal(t, before, d.Snapshot())
	assert.Equal(t, 1, m.Pending(), "a single tick per demo")

	m.Advance(tick)
	assert.Equal(t, 18, d.Snapshot().Progress)
}

func TestCelebrationMarkers(t *testing.T) {
	d, m := newDemo(t, nil)
	require.True(t, d.Start())
	m.Advance(34 * tick)

	s := d.Snapshot()
	require.True(t, s.Celebrating)
	require.Len(t, s.Markers, 8)
	for i, mk := range s.Markers {
		assert.Equal(t, i, mk.ID)
		assert.Equal(t, 50.0, mk.X)
		assert.Equal(t, 50.0, mk.Y)
		assert.Equal(t, time.Duration(i)*200*time.Millisecond, mk.Delay)
	}

	m.Advance(hold - time.Millisecond)
	assert.Len(t, d.Snapshot().Markers, 8)
	m.Advance(time.Millisecond)
	s = d.Snapshot()
	assert.False(t, s.Celebrating)
	assert.Empty(t, s.Markers)
	assert.Equal(t, Completed, s.Phase, "clearing markers keeps the run completed")
}

func TestMarkersStayInRange(t *testing.T) {
	m := schedule.NewManual()
	d := New(ButtonEvolution, Options{Scheduler: m, Tick: tick, Step: 50, Markers: 8, Hold: hold})
	defer d.Close()
	require.True(t, d.Start())
	m.Advance(2 * tick)

	for _, mk := range d.Snapshot().Markers {
		assert.GreaterOrEqual(t, mk.X, 0.0)
		assert.Less(t, mk.X, 100.0)
		assert.GreaterOrEqual(t, mk.Y, 0.0)
		assert.Less(t, mk.Y, 100.0)
	}
}

func TestResetFromCompleted(t *testing.T) {
	d, m := newDemo(t, nil)
	require.True(t, d.Start())
	m.Advance(34 * tick)

	require.True(t, d.Reset())
	s := d.Snapshot()
	assert.Equal(t, State{Kind: ProgressCelebration}, s)
	assert.Equal(t, 0, m.Pending(), "reset cancels the celebration clear")

	require.True(t, d.Start())
	m.Advance(tick)
	assert.Equal(t, 3, d.Snapshot().Progress)
}

func TestResetFromIdleIsNoOp(t *testing.T) {
	calls := 0
	d, _ := newDemo(t, func(State) { calls++ })

	assert.False(t, d.Reset())
	assert.Equal(t, State{Kind: ProgressCelebration}, d.Snapshot())
	assert.Zero(t, calls)
}

func TestResetDuringRunDropsStaleTick(t *testing.T) {
	d, m := newDemo(t, nil)
	require.True(t, d.Start())
	m.Advance(3 * tick)

	require.True(t, d.Reset())
	m.Advance(time.Second)
	assert.Equal(t, 0, d.Snapshot().Progress)
	assert.Equal(t, Idle, d.Snapshot().Phase)
}

func TestPrimaryCycle(t *testing.T) {
	d, m := newDemo(t, nil)

	require.True(t, d.Primary())
	assert.Equal(t, Running, d.Snapshot().Phase)
	m.Advance(34 * tick)
	require.Equal(t, Completed, d.Snapshot().Phase)

	require.True(t, d.Primary())
	assert.Equal(t, Idle, d.Snapshot().Phase)
}

func TestNoMutationAfterClose(t *testing.T) {
	closed := false
	d, m := newDemo(t, func(State) {
		if closed {
			t.Error("state changed after close")
		}
	})
	require.True(t, d.Start())
	m.Advance(34 * tick)

	closed = true
	d.Close()
	assert.Equal(t, 0, m.Pending())
	m.Advance(time.Minute)
	assert.False(t, d.Start())
	assert.False(t, d.Reset())
}

func TestZeroTickFallsBackToDefault(t *testing.T) {
	m := schedule.NewManual()
	d := New(ButtonEvolution, Options{Scheduler: m, Step: 50, Hold: hold})
	t.Cleanup(d.Close)

	require.True(t, d.Start())
	require.Equal(t, 1, m.Pending())

	m.Advance(2 * DefaultTick)
	assert.Equal(t, Completed, d.Snapshot().Phase)
	assert.True(t, d.Primary(), "a completed run can be reset")
	assert.Equal(t, Idle, d.Snapshot().Phase)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Processing", State{Progress: 3}.Label())
	assert.Equal(t, "Almost there", State{Progress: 50}.Label())
	assert.Equal(t, "Finishing", State{Progress: 80}.Label())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.Slug())
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.Headline())
	}
	_, err := ParseKind("confetti")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
