package service

import (
	"github.com/go-gl/mathgl/mgl64"

	"DialectGlobe-App/internal/domain/model"
)

// fakeHost はテスト用のSceneHost
type fakeHost struct {
	target    mgl64.Vec3
	nodes     []model.Marker
	removed   []string
	callbacks []FrameCallback
}

func (h *fakeHost) SetLookAtTarget(target mgl64.Vec3) { h.target = target }

func (h *fakeHost) AddSceneNode(marker model.Marker) { h.nodes = append(h.nodes, marker) }

func (h *fakeHost) RemoveSceneNode(id string) bool {
	for i, n := range h.nodes {
		if n.ID == id {
			h.nodes = append(h.nodes[:i], h.nodes[i+1:]...)
			h.removed = append(h.removed, id)
			return true
		}
	}
	return false
}

func (h *fakeHost) OnFrame(fn FrameCallback) { h.callbacks = append(h.callbacks, fn) }
