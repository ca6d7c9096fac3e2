package service

import (
	"github.com/google/uuid"

	"DialectGlobe-App/internal/domain/model"
)

// MarkerPlacer は地球儀上にマーカーを置く
type MarkerPlacer struct {
	newID func() string
}

// NewMarkerPlacer 新しいMarkerPlacerを作成
func NewMarkerPlacer() *MarkerPlacer {
	return &MarkerPlacer{
		newID: func() string { return uuid.New().String() },
	}
}

// PlaceMarker 赤い球体マーカーを地表の少し外側に作成してシーンに追加する
func (p *MarkerPlacer) PlaceMarker(host SceneHost, lat, lon float64) model.Marker {
	marker := model.Marker{
		ID:       p.newID(),
		Position: LatLonToVector3(lat, lon, model.MarkerSurfaceRadius),
		Radius:   model.MarkerSize,
		Segments: model.MarkerSegments,
		Color:    model.MarkerColor,
	}
	host.AddSceneNode(marker)
	return marker
}
