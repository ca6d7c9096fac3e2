package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/repository"
)

type memorySessionEntry struct {
	session  *model.QuizSession
	expireAt time.Time
}

// MemorySessionRepository プロセス内にセッションを保持するリポジトリ
// 最終更新からttl経過したセッションは期限切れとして扱う
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySessionEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionRepository 新しいMemorySessionRepositoryを作成
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]memorySessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

var _ repository.SessionRepository = (*MemorySessionRepository)(nil)

func (r *MemorySessionRepository) Save(ctx context.Context, session *model.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = memorySessionEntry{
		session:  session.Clone(),
		expireAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *MemorySessionRepository) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || r.expired(entry) {
		return nil, model.ErrSessionNotFound
	}
	return entry.session.Clone(), nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// PurgeExpired 期限切れのセッションを削除し、削除したIDを返す
func (r *MemorySessionRepository) PurgeExpired() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var purged []string
	for id, entry := range r.sessions {
		if r.expired(entry) {
			delete(r.sessions, id)
			purged = append(purged, id)
		}
	}
	return purged
}

// RunJanitor ctxがキャンセルされるまで定期的に期限切れセッションを掃除する
func (r *MemorySessionRepository) RunJanitor(ctx context.Context, interval time.Duration, onPurge func(ids []string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged := r.PurgeExpired()
			if len(purged) == 0 {
				continue
			}
			log.Printf("🧹 期限切れセッションを削除: %d件", len(purged))
			if onPurge != nil {
				onPurge(purged)
			}
		}
	}
}

func (r *MemorySessionRepository) expired(entry memorySessionEntry) bool {
	return r.ttl > 0 && !r.now().Before(entry.expireAt)
}
