package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	p := &Point{Lat: 24.7136, Lng: 46.6753}
	assert.InDelta(t, 0, Distance(p, p), 1e-9)
}

func TestDistance_Symmetry(t *testing.T) {
	riyadh := &Point{Lat: 24.7136, Lng: 46.6753}
	jeddah := &Point{Lat: 21.4858, Lng: 39.1925}

	assert.InDelta(t, Distance(riyadh, jeddah), Distance(jeddah, riyadh), 1e-9)
}

func TestDistance_KnownValue(t *testing.T) {
	riyadh := &Point{Lat: 24.7136, Lng: 46.6753}
	jeddah := &Point{Lat: 21.4858, Lng: 39.1925}

	// Эр-Рияд - Джидда примерно 845-850 км по прямой
	d := Distance(riyadh, jeddah)
	assert.Greater(t, d, 800.0)
	assert.Less(t, d, 900.0)
}

func TestDistance_MissingCoordinates(t *testing.T) {
	p := &Point{Lat: 24.7136, Lng: 46.6753}

	assert.True(t, math.IsInf(Distance(nil, p), 1))
	assert.True(t, math.IsInf(Distance(p, nil), 1))
	assert.True(t, math.IsInf(Distance(nil, nil), 1))
}
