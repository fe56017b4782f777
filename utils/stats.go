package utils

import (
	"math"
	"sort"
)

// Summary describes a numeric sample.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// Summarize returns nil for an empty sample.
func Summarize(values []float64) *Summary {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := &Summary{
		Count: len(values),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	s.Mean = sum / float64(s.Count)

	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - s.Mean
		sumSquaredDiff += diff * diff
	}
	s.StdDev = math.Sqrt(sumSquaredDiff / float64(s.Count))

	s.Median = percentile(sorted, 50)
	s.Q1 = percentile(sorted, 25)
	s.Q3 = percentile(sorted, 75)
	return s
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	index := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Count is one bucket of a frequency table.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Tally counts labels, most frequent first and ties by label. Empty labels
// are counted as "Sin dato".
func Tally(labels []string) []Count {
	freq := make(map[string]int)
	for _, l := range labels {
		if l == "" {
			l = "Sin dato"
		}
		freq[l]++
	}

	out := make([]Count, 0, len(freq))
	for l, n := range freq {
		out = append(out, Count{Label: l, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
