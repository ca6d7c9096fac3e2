package scene

import (
	"context"
	"log"
	"sync"
	"time"

	"DialectGlobe-App/internal/domain/model"
)

// Registry はセッションごとの稼働中シーンを保持し、描画ループを回す
type Registry struct {
	mu          sync.RWMutex
	graphs      map[string]*Graph
	texturePath string
}

// NewRegistry 新しいRegistryを作成
func NewRegistry(texturePath string) *Registry {
	return &Registry{
		graphs:      make(map[string]*Graph),
		texturePath: texturePath,
	}
}

// Create セッション用の空のシーンを作成して登録する
func (r *Registry) Create(sessionID string) *Graph {
	g := NewGraph(r.texturePath)
	r.mu.Lock()
	r.graphs[sessionID] = g
	r.mu.Unlock()
	return g
}

// Ensure 登録済みのシーンを返す。無ければセッション内容から復元する
func (r *Registry) Ensure(session *model.QuizSession) *Graph {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.graphs[session.ID]; ok {
		return g
	}
	g := RestoreGraph(r.texturePath, session)
	r.graphs[session.ID] = g
	return g
}

// Get 登録済みのシーン
func (r *Registry) Get(sessionID string) (*Graph, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.graphs[sessionID]
	return g, ok
}

// Remove シーンを破棄する
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.graphs, sessionID)
	r.mu.Unlock()
}

// Len 稼働中のシーン数
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.graphs)
}

// StepAll すべてのシーンを1フレーム進める
func (r *Registry) StepAll(dt time.Duration) {
	r.mu.RLock()
	graphs := make([]*Graph, 0, len(r.graphs))
	for _, g := range r.graphs {
		graphs = append(graphs, g)
	}
	r.mu.RUnlock()

	for _, g := range graphs {
		g.Step(dt)
	}
}

// Run 描画ループ。ctxがキャンセルされるまで毎フレームStepAllを呼ぶ
func (r *Registry) Run(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("🎞️ 描画ループ開始 (%d fps)", fps)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("🛑 描画ループ停止")
			return
		case now := <-ticker.C:
			r.StepAll(now.Sub(last))
			last = now
		}
	}
}
