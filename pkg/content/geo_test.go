package content

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
	}{
		{"same point", 40.6892, -74.0445, 40.6892, -74.0445, 0},
		{"liberty to charging bull", 40.6892, -74.0445, 40.7056, -74.0134, 3.1937},
		{"liberty to the thinker", 40.6892, -74.0445, 40.7829, -73.9654, 12.3682},
		{"big ben to liberty", 51.5007, -0.1246, 40.6892, -74.0445, 5574.84},
		{"two hundred metres north", 40.6892, -74.0445, 40.6910, -74.0445, 0.2002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2), 0.01)
		})
	}
}

func TestHaversineIsSymmetric(t *testing.T) {
	var there = Haversine(40.6892, -74.0445, 40.7829, -73.9654)
	var back = Haversine(40.7829, -73.9654, 40.6892, -74.0445)
	assert.InDelta(t, there, back, 1e-9)
}

func TestHaversineAntipodes(t *testing.T) {
	var halfCircumference = math.Pi * earthRadiusKm

	for _, point := range [][2]float64{{18.8389, 158.5833}, {0, 0}, {90, 0}, {-33.8568, 151.2153}, {40.6892, -74.0445}} {
		var distance = Haversine(point[0], point[1], -point[0], point[1]+180)
		assert.False(t, math.IsNaN(distance), "%v", point)
		assert.InDelta(t, halfCircumference, distance, 0.01, "%v", point)
	}
}
