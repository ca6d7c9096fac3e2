package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/repository"
)

const quizSessionsCollection = "quizSessions"

// FirestoreSessionRepository Firestoreを使ったクイズセッションのリポジトリ
// expireAtにTTLポリシーを設定して期限切れドキュメントを削除する想定
type FirestoreSessionRepository struct {
	client *firestore.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewFirestoreSessionRepository 新しいFirestoreSessionRepositoryを作成
func NewFirestoreSessionRepository(client *firestore.Client, ttl time.Duration) *FirestoreSessionRepository {
	return &FirestoreSessionRepository{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

var _ repository.SessionRepository = (*FirestoreSessionRepository)(nil)

func (r *FirestoreSessionRepository) Save(ctx context.Context, session *model.QuizSession) error {
	data := session.ToFirestoreQuizSession(r.ttl)
	if _, err := r.client.Collection(quizSessionsCollection).Doc(session.ID).Set(ctx, data); err != nil {
		log.Printf("❌ Failed to save quiz session %s: %v", session.ID, err)
		return fmt.Errorf("クイズセッションの保存に失敗しました: %w", err)
	}
	return nil
}

func (r *FirestoreSessionRepository) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	doc, err := r.client.Collection(quizSessionsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, sessionError("クイズセッションの取得に失敗しました", err)
	}

	var data model.FirestoreQuizSession
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	// TTLによる削除は即時ではないため読み込み時にも期限を確認する
	if !data.ExpireAt.IsZero() && !r.now().Before(data.ExpireAt) {
		return nil, model.ErrSessionNotFound
	}

	return data.ToQuizSession(id), nil
}

func (r *FirestoreSessionRepository) Delete(ctx context.Context, id string) error {
	// Existsを付けないと存在しないドキュメントの削除も成功扱いになる
	if _, err := r.client.Collection(quizSessionsCollection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return sessionError("クイズセッションの削除に失敗しました", err)
	}
	return nil
}

// sessionError はNotFoundをErrSessionNotFoundに読み替え、それ以外はmsgで包む
func sessionError(msg string, err error) error {
	if status.Code(err) == codes.NotFound {
		return model.ErrSessionNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
