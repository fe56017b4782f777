package utils

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Coordinate represents a geographic coordinate with latitude and longitude
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Area is a polygon drawn on the map to narrow a listing, sent as
// {"coordinates":[{"lat":..,"lng":..},...]}.
type Area struct {
	Coordinates []Coordinate `json:"coordinates"`
	Name        string       `json:"name,omitempty"`
}

// ParseArea decodes and validates an area. An open ring is closed
// automatically. An empty string yields a nil polygon.
func ParseArea(s string) (orb.Polygon, error) {
	if s == "" {
		return nil, nil
	}

	var area Area
	if err := json.Unmarshal([]byte(s), &area); err != nil {
		return nil, fmt.Errorf("invalid area JSON format: %w", err)
	}

	// A valid polygon needs at least 3 points (triangle)
	if len(area.Coordinates) < 3 {
		return nil, errors.New("area must have at least 3 coordinates to form a polygon")
	}

	ring := make(orb.Ring, 0, len(area.Coordinates)+1)
	for i, coord := range area.Coordinates {
		if err := validateCoordinate(coord); err != nil {
			return nil, fmt.Errorf("invalid coordinate at index %d: %w", i, err)
		}
		ring = append(ring, orb.Point{coord.Lng, coord.Lat})
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}, nil
}

func validateCoordinate(coord Coordinate) error {
	if coord.Lat < -90 || coord.Lat > 90 {
		return fmt.Errorf("latitude %.6f is out of valid range [-90, 90]", coord.Lat)
	}
	if coord.Lng < -180 || coord.Lng > 180 {
		return fmt.Errorf("longitude %.6f is out of valid range [-180, 180]", coord.Lng)
	}
	return nil
}

// InArea reports whether the point lies inside poly. A nil polygon
// contains everything; a missing point is never inside a real one.
func InArea(poly orb.Polygon, lat, lng *float64) bool {
	if poly == nil {
		return true
	}
	if lat == nil || lng == nil {
		return false
	}
	return planar.PolygonContains(poly, orb.Point{*lng, *lat})
}
