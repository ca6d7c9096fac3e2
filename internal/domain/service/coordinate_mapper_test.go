package service

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestLatLonToVector3_DistanceEqualsRadius(t *testing.T) {
	radii := []float64{0.5, 1, 1.02, 6371}
	for _, r := range radii {
		for lat := -90.0; lat <= 90; lat += 15 {
			for lon := -180.0; lon <= 180; lon += 30 {
				v := LatLonToVector3(lat, lon, r)
				assert.InDelta(t, r, v.Len(), r*tolerance, "lat=%v lon=%v r=%v", lat, lon, r)
			}
		}
	}
}

func TestLatLonToVector3_NorthPoleIgnoresLongitude(t *testing.T) {
	for _, lon := range []float64{-180, -90, 0, 45, 139.6917, 180} {
		v := LatLonToVector3(90, lon, 2)
		assert.InDelta(t, 0, v.X(), tolerance)
		assert.InDelta(t, 2, v.Y(), tolerance)
		assert.InDelta(t, 0, v.Z(), tolerance)
	}
}

func TestLatLonToVector3_KnownPoints(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     mgl64.Vec3
	}{
		{"本初子午線と赤道", 0, 0, mgl64.Vec3{1, 0, 0}},
		{"東経90度", 0, 90, mgl64.Vec3{0, 0, -1}},
		{"西経90度", 0, -90, mgl64.Vec3{0, 0, 1}},
		{"南極", -90, 0, mgl64.Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LatLonToUnitVector(tt.lat, tt.lon)
			assert.True(t, got.ApproxEqualThreshold(tt.want, 1e-9), "got %v want %v", got, tt.want)
		})
	}
}

func TestLatLonToVector3_OutOfRangeIsNotRejected(t *testing.T) {
	v := LatLonToVector3(120, 400, 1)
	assert.InDelta(t, 1, v.Len(), tolerance)
}

func TestLatLonToVector3_Idempotent(t *testing.T) {
	a := LatLonToVector3(51.505, -0.09, 1.02)
	b := LatLonToVector3(51.505, -0.09, 1.02)
	assert.Equal(t, a, b)
}

func TestPointToVector3_UsesLonLatOrder(t *testing.T) {
	p := orb.Point{139.6917, 35.6895}
	assert.Equal(t, LatLonToVector3(35.6895, 139.6917, 1.02), PointToVector3(p, 1.02))
}
