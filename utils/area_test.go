package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `{"coordinates":[{"lat":-34.60,"lng":-58.40},{"lat":-34.60,"lng":-58.30},{"lat":-34.70,"lng":-58.30},{"lat":-34.70,"lng":-58.40}]}`

func TestParseArea(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"open ring", square, ""},
		{"empty", "", ""},
		{"not json", "{", "invalid area JSON"},
		{"two points", `{"coordinates":[{"lat":1,"lng":1},{"lat":2,"lng":2}]}`, "at least 3"},
		{"bad latitude", `{"coordinates":[{"lat":91,"lng":1},{"lat":2,"lng":2},{"lat":3,"lng":1}]}`, "index 0"},
		{"bad longitude", `{"coordinates":[{"lat":1,"lng":1},{"lat":2,"lng":200},{"lat":3,"lng":1}]}`, "index 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArea(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseAreaClosesRing(t *testing.T) {
	poly, err := ParseArea(square)
	require.NoError(t, err)
	require.Len(t, poly, 1)
	assert.Len(t, poly[0], 5)
	assert.True(t, poly[0].Closed())
}

func TestInArea(t *testing.T) {
	poly, err := ParseArea(square)
	require.NoError(t, err)

	f := func(v float64) *float64 { return &v }
	tests := []struct {
		name     string
		lat, lng *float64
		want     bool
	}{
		{"inside", f(-34.65), f(-58.35), true},
		{"outside", f(-34.50), f(-58.35), false},
		{"no coordinates", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InArea(poly, tt.lat, tt.lng))
		})
	}

	assert.True(t, InArea(nil, nil, nil), "no area keeps every tree")
}
