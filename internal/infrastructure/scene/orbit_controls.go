package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitControls はダンピング付きの注視点操作
// Targetが目標値で、Updateを呼ぶたびにLookAtが少しずつ近づく
type OrbitControls struct {
	Target        mgl64.Vec3
	LookAt        mgl64.Vec3
	DampingFactor float64
	EnableDamping bool
}

// NewOrbitControls ダンピング有効の操作系を作成
func NewOrbitControls(dampingFactor float64) *OrbitControls {
	return &OrbitControls{
		DampingFactor: dampingFactor,
		EnableDamping: true,
	}
}

// Update 1フレーム分ダンピングを進める
// 注視点がまだ動いている場合はtrueを返す
func (c *OrbitControls) Update() bool {
	delta := c.Target.Sub(c.LookAt)
	if delta.Len() < 1e-6 {
		c.LookAt = c.Target
		return false
	}
	if !c.EnableDamping || c.DampingFactor >= 1 {
		c.LookAt = c.Target
		return true
	}
	c.LookAt = c.LookAt.Add(delta.Mul(c.DampingFactor))
	return true
}
