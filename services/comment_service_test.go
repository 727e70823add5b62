package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRating(t *testing.T) {
	average, count := NextRating(0, 0, 4)
	assert.InDelta(t, 4.0, average, 0.001)
	assert.Equal(t, 1, count)

	average, count = NextRating(average, count, 5)
	assert.InDelta(t, 4.5, average, 0.001)
	assert.Equal(t, 2, count)

	average, count = NextRating(average, count, 3)
	assert.InDelta(t, 4.0, average, 0.001)
	assert.Equal(t, 3, count)
}
