package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	assert.Nil(t, Summarize(nil))

	s := Summarize([]float64{4, 1, 3, 2})
	require.NotNil(t, s)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 2.5, s.Median)
	assert.InDelta(t, 1.75, s.Q1, 1e-9)
	assert.InDelta(t, 3.25, s.Q3, 1e-9)
	assert.InDelta(t, 1.118034, s.StdDev, 1e-6)

	one := Summarize([]float64{7})
	assert.Equal(t, 7.0, one.Median)
	assert.Equal(t, 0.0, one.StdDev)
}

func TestTally(t *testing.T) {
	got := Tally([]string{"Fresno", "Tilo", "", "Fresno", "Acacia", "Tilo", "Fresno"})
	assert.Equal(t, []Count{
		{"Fresno", 3},
		{"Tilo", 2},
		{"Acacia", 1},
		{"Sin dato", 1},
	}, got)
	assert.Empty(t, Tally(nil))
}
