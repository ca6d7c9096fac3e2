package scene

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"DialectGlobe-App/internal/domain/model"
)

func TestRegistry_CreateEnsureRemove(t *testing.T) {
	r := NewRegistry("/assets/earth.jpg")

	created := r.Create("a")
	got, ok := r.Get("a")
	assert.True(t, ok)
	assert.Same(t, created, got)

	restored := r.Ensure(&model.QuizSession{ID: "b"})
	assert.Same(t, restored, r.Ensure(&model.QuizSession{ID: "b"}))
	assert.Equal(t, 2, r.Len())

	r.Remove("a")
	_, ok = r.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_StepAll(t *testing.T) {
	r := NewRegistry("")
	var frames atomic.Int32
	for _, id := range []string{"a", "b", "c"} {
		r.Create(id).OnFrame(func(time.Duration) { frames.Add(1) })
	}

	r.StepAll(time.Millisecond)
	assert.Equal(t, int32(3), frames.Load())
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	r := NewRegistry("")
	var frames atomic.Int32
	r.Create("a").OnFrame(func(time.Duration) { frames.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 200)
		close(done)
	}()

	assert.Eventually(t, func() bool { return frames.Load() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("描画ループが停止しない")
	}
}
