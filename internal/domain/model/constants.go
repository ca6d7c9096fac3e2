package model

// 画面に表示する固定メッセージ
const (
	QuestionPrompt     = "What dialect is spoken in the region displayed?"
	CorrectMessage     = "Correct!"
	WrongMessageFormat = "Wrong! The correct answer is %s."
)

// 地球儀とマーカーの描画定数
const (
	GlobeRadius         = 1.0
	GlobeSegments       = 64
	MarkerSurfaceRadius = 1.02 // 地表より少し外側に置いてZファイティングを避ける
	MarkerSize          = 0.02
	MarkerSegments      = 16
	MarkerColor         = 0xff0000
)

// カメラ・ライト・操作系の既定値
const (
	CameraFOV          = 75.0
	CameraNear         = 0.1
	CameraFar          = 1000.0
	CameraDistance     = 2.0
	AmbientLightColor  = 0xffffff
	AmbientLightPower  = 1.0
	OrbitDampingFactor = 0.05
)

// MarkerMode はマーカーの残し方
type MarkerMode string

const (
	// MarkerModeLatest 新しい問題のたびに前のマーカーを消す
	MarkerModeLatest MarkerMode = "latest"
	// MarkerModeTrail 過去のマーカーをすべて残す
	MarkerModeTrail MarkerMode = "trail"
)

// IsValid は既知のMarkerModeかどうか
func (m MarkerMode) IsValid() bool {
	return m == MarkerModeLatest || m == MarkerModeTrail
}
