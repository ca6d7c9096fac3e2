package scene

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/service"
)

// Graph はヘッドレスのシーングラフ
// 実際の描画はブラウザ側がSnapshotを元に行う
type Graph struct {
	mu        sync.Mutex
	camera    model.CameraState
	light     model.LightState
	globe     model.GlobeState
	controls  *OrbitControls
	nodes     []model.Marker
	callbacks []service.FrameCallback
	frame     uint64
}

var _ service.SceneHost = (*Graph)(nil)

// NewGraph カメラ・環境光・地球儀を配置したシーンを作成
func NewGraph(texturePath string) *Graph {
	return &Graph{
		camera: model.CameraState{
			Position: mgl64.Vec3{0, 0, model.CameraDistance},
			FOV:      model.CameraFOV,
			Near:     model.CameraNear,
			Far:      model.CameraFar,
		},
		light: model.LightState{
			Color:     model.AmbientLightColor,
			Intensity: model.AmbientLightPower,
		},
		globe: model.GlobeState{
			Radius:   model.GlobeRadius,
			Segments: model.GlobeSegments,
			Texture:  texturePath,
		},
		controls: NewOrbitControls(model.OrbitDampingFactor),
		nodes:    []model.Marker{},
	}
}

// RestoreGraph 保存済みセッションからシーンを復元する
// ダンピングは復元時点で目標に到達済みとして扱う
func RestoreGraph(texturePath string, session *model.QuizSession) *Graph {
	g := NewGraph(texturePath)
	g.controls.Target = session.Target
	g.controls.LookAt = session.Target
	g.nodes = append(g.nodes, session.Markers...)
	return g
}

// SetLookAtTarget 注視点の目標値を変更する
func (g *Graph) SetLookAtTarget(target mgl64.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.controls.Target = target
}

// AddSceneNode マーカーを追加する
func (g *Graph) AddSceneNode(marker model.Marker) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = append(g.nodes, marker)
}

// RemoveSceneNode マーカーを取り除く
func (g *Graph) RemoveSceneNode(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, n := range g.nodes {
		if n.ID == id {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// OnFrame 毎フレームのコールバックを登録する（解除はできない）
func (g *Graph) OnFrame(fn service.FrameCallback) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.callbacks = append(g.callbacks, fn)
}

// Step 1フレーム進める: ダンピングを更新してからコールバックを呼ぶ
func (g *Graph) Step(dt time.Duration) {
	g.mu.Lock()
	g.controls.Update()
	g.frame++
	callbacks := append([]service.FrameCallback(nil), g.callbacks...)
	g.mu.Unlock()

	for _, fn := range callbacks {
		fn(dt)
	}
}

// NodeCount シーン内のマーカー数
func (g *Graph) NodeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes)
}

// Snapshot 現在のシーン状態
func (g *Graph) Snapshot() model.SceneSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return model.SceneSnapshot{
		Camera:  g.camera,
		Light:   g.light,
		Globe:   g.globe,
		Target:  g.controls.Target,
		LookAt:  g.controls.LookAt,
		Markers: append([]model.Marker{}, g.nodes...),
		Frame:   g.frame,
	}
}
