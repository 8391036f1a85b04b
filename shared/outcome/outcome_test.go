package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talentlink/shared/outcome"
)

func TestRandomSource_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected bool
	}{
		{
			name:     "rate zero never approves",
			rate:     0,
			expected: false,
		},
		{
			name:     "rate one always approves",
			rate:     1,
			expected: true,
		},
		{
			name:     "rate above one is clamped",
			rate:     1.5,
			expected: true,
		},
		{
			name:     "rate below zero is clamped",
			rate:     -0.5,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := outcome.NewRandom(tt.rate, 42)

			for range 100 {
				assert.Equal(t, tt.expected, src.Next())
			}
		})
	}
}

func TestRandomSource_SeedDeterminism(t *testing.T) {
	first := outcome.NewRandom(0.5, 7)
	second := outcome.NewRandom(0.5, 7)

	for range 50 {
		assert.Equal(t, first.Next(), second.Next())
	}
}

func TestFixedSource_ReplaysSequence(t *testing.T) {
	src := outcome.NewFixed(true, false, true)

	assert.True(t, src.Next())
	assert.False(t, src.Next())
	assert.True(t, src.Next())

	// exhausted sequence repeats the last value
	assert.True(t, src.Next())
	assert.True(t, src.Next())
}

func TestFixedSource_EmptyDefaultsTrue(t *testing.T) {
	src := outcome.NewFixed()

	assert.True(t, src.Next())
	assert.True(t, src.Next())
}
