package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFadeOutInterpolatesLinearly(t *testing.T) {
	f := FadeOut(2)
	assert.Equal(t, float32(0), f.Opacity())

	opacity, done := f.Step(0.5)
	assert.InDelta(t, 0.25, opacity, 1e-5)
	assert.False(t, done)

	opacity, done = f.Step(1)
	assert.InDelta(t, 0.75, opacity, 1e-5)
	assert.False(t, done)

	opacity, done = f.Step(1)
	assert.Equal(t, float32(1), opacity, "end value is exact")
	assert.True(t, done)
}

func TestFadeInEndsClear(t *testing.T) {
	f := FadeIn(1)
	assert.Equal(t, float32(1), f.Opacity())

	opacity, done := f.Step(0.3)
	assert.InDelta(t, 0.7, opacity, 1e-5)
	assert.False(t, done)

	opacity, done = f.Step(5)
	assert.Equal(t, float32(0), opacity)
	assert.True(t, done)
}

func TestFadeZeroDurationIsDone(t *testing.T) {
	f := FadeOut(0)
	assert.True(t, f.Done())
	assert.Equal(t, float32(1), f.Opacity())
}

func TestFadeIgnoresNegativeDelta(t *testing.T) {
	f := NewFade(0, 1, 1)
	f.Step(0.5)
	opacity, _ := f.Step(-1)
	assert.InDelta(t, 0.5, opacity, 1e-5)
}
