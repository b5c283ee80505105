package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickTogglesAndCounts(t *testing.T) {
	c := New(OnboardingFlows, nil)

	c.Click()
	s := c.Snapshot()
	assert.True(t, s.Expanded)
	assert.Equal(t, 1, s.Interactions)
	assert.Equal(t, "+1 click", s.Badge())
	assert.Equal(t, "Click to collapse", s.Hint())

	c.Click()
	c.Click()
	s = c.Snapshot()
	assert.True(t, s.Expanded)
	assert.Equal(t, 3, s.Interactions)
	assert.Equal(t, "+3 clicks", s.Badge())
}

func TestHoverDoesNotTouchLogic(t *testing.T) {
	var updates []State
	c := New(MicroInteractions, func(s State) { updates = append(updates, s) })

	c.Hover(true)
	c.Hover(true)
	c.Hover(false)

	require.Len(t, updates, 2)
	s := c.Snapshot()
	assert.False(t, s.Expanded)
	assert.Zero(t, s.Interactions)
	assert.Empty(t, s.Badge())
	assert.Equal(t, "Click to learn more", s.Hint())
}

func TestCloseSilencesCard(t *testing.T) {
	c := New(CelebratoryMoments, func(State) { t.Fatal("update after close") })
	c.Close()
	c.Click()
	c.Hover(true)
	assert.Zero(t, c.Snapshot().Interactions)
}

func TestEveryKindHasCopy(t *testing.T) {
	for _, k := range Kinds {
		assert.NotEmpty(t, k.Title(), k)
		assert.NotEmpty(t, k.Detail(), k)
		got, err := ParseKind(k.Slug())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	for _, k := range InfoKinds {
		assert.NotEmpty(t, k.Highlight(), k)
		got, err := ParseInfoKind(k.Slug())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("nope")
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestInfoCardHover(t *testing.T) {
	var updates int
	c := NewInfo(CoffeeChat, func(InfoState) { updates++ })
	c.Hover(true)
	c.Hover(true)
	assert.True(t, c.Snapshot().Hovered)
	c.Close()
	c.Hover(false)
	assert.Equal(t, 1, updates)
	assert.True(t, c.Snapshot().Hovered)
}
