package repository

import (
	"context"

	"DialectGlobe-App/internal/domain/model"
)

// SessionRepository はクイズセッションの保存先
// 存在しないIDには model.ErrSessionNotFound を返す
type SessionRepository interface {
	Save(ctx context.Context, session *model.QuizSession) error
	Get(ctx context.Context, id string) (*model.QuizSession, error)
	Delete(ctx context.Context, id string) error
}
