package model

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Marker 地球儀上に置く小さな球体マーカー
type Marker struct {
	ID       string     `json:"id"`
	Position mgl64.Vec3 `json:"position"`
	Radius   float64    `json:"radius"`
	Segments int        `json:"segments"`
	Color    int        `json:"color"`
}

// CameraState 透視投影カメラの設定
type CameraState struct {
	Position mgl64.Vec3 `json:"position"`
	FOV      float64    `json:"fov"`
	Near     float64    `json:"near"`
	Far      float64    `json:"far"`
}

// LightState 環境光の設定
type LightState struct {
	Color     int     `json:"color"`
	Intensity float64 `json:"intensity"`
}

// GlobeState 地球儀メッシュの設定
type GlobeState struct {
	Radius   float64 `json:"radius"`
	Segments int     `json:"segments"`
	Texture  string  `json:"texture"`
}

// SceneSnapshot ブラウザ側のレンダラーに渡すシーン全体の状態
type SceneSnapshot struct {
	Camera  CameraState `json:"camera"`
	Light   LightState  `json:"light"`
	Globe   GlobeState  `json:"globe"`
	Target  mgl64.Vec3  `json:"target"`  // 注視点の目標値
	LookAt  mgl64.Vec3  `json:"look_at"` // ダンピング適用後の現在の注視点
	Markers []Marker    `json:"markers"`
	Frame   uint64      `json:"frame"`
}
