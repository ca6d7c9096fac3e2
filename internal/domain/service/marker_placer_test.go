package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DialectGlobe-App/internal/domain/model"
)

func TestPlaceMarker(t *testing.T) {
	host := &fakeHost{}
	placer := NewMarkerPlacer()

	marker := placer.PlaceMarker(host, 48.8566, 2.3522)

	require.Len(t, host.nodes, 1)
	assert.Equal(t, marker, host.nodes[0])
	assert.NotEmpty(t, marker.ID)
	assert.Equal(t, model.MarkerColor, marker.Color)
	assert.Equal(t, model.MarkerSize, marker.Radius)
	assert.Equal(t, model.MarkerSegments, marker.Segments)
	assert.Equal(t, LatLonToVector3(48.8566, 2.3522, model.MarkerSurfaceRadius), marker.Position)
	assert.InDelta(t, model.MarkerSurfaceRadius, marker.Position.Len(), 1e-9)
}

func TestPlaceMarker_EachCallAddsNode(t *testing.T) {
	host := &fakeHost{}
	placer := NewMarkerPlacer()

	first := placer.PlaceMarker(host, 0, 0)
	second := placer.PlaceMarker(host, 0, 0)

	assert.Len(t, host.nodes, 2)
	assert.NotEqual(t, first.ID, second.ID)
}
