package service

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// LatLonToVector3 緯度経度を半径radiusの球面上の3D座標に変換する
// 極角は北極から、方位角はテクスチャの継ぎ目に合わせて180度ずらす
// 範囲外の値も検証せずにそのまま計算する
func LatLonToVector3(lat, lon, radius float64) mgl64.Vec3 {
	ll := s2.LatLngFromDegrees(lat, lon)
	phi := math.Pi/2 - ll.Lat.Radians()
	theta := ll.Lng.Radians() + math.Pi

	x := -(radius * math.Sin(phi) * math.Cos(theta))
	y := radius * math.Cos(phi)
	z := radius * math.Sin(phi) * math.Sin(theta)

	return mgl64.Vec3{x, y, z}
}

// LatLonToUnitVector 半径1の球面上の座標
func LatLonToUnitVector(lat, lon float64) mgl64.Vec3 {
	return LatLonToVector3(lat, lon, 1)
}

// PointToVector3 orb.Point（[lng, lat]）を3D座標に変換する
func PointToVector3(p orb.Point, radius float64) mgl64.Vec3 {
	return LatLonToVector3(p.Lat(), p.Lon(), radius)
}
