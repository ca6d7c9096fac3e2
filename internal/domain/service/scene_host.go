package service

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"DialectGlobe-App/internal/domain/model"
)

// FrameCallback は毎フレーム呼ばれるコールバック
type FrameCallback func(dt time.Duration)

// SceneHost はシーングラフ・カメラ操作・描画ループを持つ外部ホスト
// クイズのロジックはこのインターフェース越しにだけシーンを触る
type SceneHost interface {
	// SetLookAtTarget 視点操作の注視点を変更する
	SetLookAtTarget(target mgl64.Vec3)
	// AddSceneNode マーカーをシーングラフに追加する
	AddSceneNode(marker model.Marker)
	// RemoveSceneNode マーカーを取り除く（存在しなければfalse）
	RemoveSceneNode(id string) bool
	// OnFrame 描画ループにコールバックを登録する
	OnFrame(fn FrameCallback)
}
