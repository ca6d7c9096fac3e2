package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/repository"
	"DialectGlobe-App/internal/domain/service"
	"DialectGlobe-App/internal/infrastructure/scene"
	"DialectGlobe-App/internal/observability"
)

type QuizUseCase interface {
	// StartSession は新しいセッションを作成して最初の問題を出題する
	StartSession(ctx context.Context) (*model.QuizState, error)

	// GetSession は現在の画面状態を返す
	GetSession(ctx context.Context, sessionID string) (*model.QuizState, error)

	// SubmitAnswer は回答を採点し、正解なら次の問題へ進める
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*model.AnswerResponse, error)

	// GetScene はブラウザ側で描画するためのシーン状態を返す
	GetScene(ctx context.Context, sessionID string) (*model.SceneSnapshot, error)

	// EndSession はセッションとシーンを破棄する
	EndSession(ctx context.Context, sessionID string) error

	// ForgetScenes は期限切れになったセッションのシーンを破棄する
	ForgetScenes(sessionIDs []string)
}

// quizUseCaseImpl はQuizUseCaseの実装
// 操作はmuで直列化し、1つのイベントスレッドと同じ順序で処理する
type quizUseCaseImpl struct {
	mu          sync.Mutex
	quizService *service.QuizService
	sessionRepo repository.SessionRepository
	scenes      *scene.Registry
	metrics     *observability.QuizCollector
}

// NewQuizUseCase は新しいQuizUseCaseインスタンスを作成
// metricsはnilでもよい
func NewQuizUseCase(
	quizService *service.QuizService,
	sessionRepo repository.SessionRepository,
	scenes *scene.Registry,
	metrics *observability.QuizCollector,
) QuizUseCase {
	return &quizUseCaseImpl{
		quizService: quizService,
		sessionRepo: sessionRepo,
		scenes:      scenes,
		metrics:     metrics,
	}
}

func (u *quizUseCaseImpl) StartSession(ctx context.Context) (*model.QuizState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sessionID := uuid.New().String()
	graph := u.scenes.Create(sessionID)
	u.watchFrames(graph)

	session := u.quizService.NewSession(sessionID, graph)
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.scenes.Remove(sessionID)
		return nil, fmt.Errorf("セッションの作成に失敗: %w", err)
	}

	u.metrics.ObserveQuestion(session.CurrentRegion.Name)
	u.metrics.SetActiveSessions(u.scenes.Len())
	log.Printf("🌍 クイズセッション開始 (ID: %s)", sessionID)

	return model.NewQuizState(session), nil
}

func (u *quizUseCaseImpl) GetSession(ctx context.Context, sessionID string) (*model.QuizState, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("セッションの取得に失敗: %w", err)
	}
	return model.NewQuizState(session), nil
}

func (u *quizUseCaseImpl) SubmitAnswer(ctx context.Context, sessionID, answer string) (*model.AnswerResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("セッションの取得に失敗: %w", err)
	}
	graph := u.ensureScene(session)

	result, err := u.quizService.SubmitAnswer(session, graph, answer)
	if err != nil {
		return nil, fmt.Errorf("回答の採点に失敗: %w", err)
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		// 採点でシーンが先に進んでいるので破棄し、次の要求で保存済みの状態から復元させる
		u.scenes.Remove(sessionID)
		u.metrics.SetActiveSessions(u.scenes.Len())
		return nil, fmt.Errorf("セッションの保存に失敗: %w", err)
	}

	u.metrics.ObserveAnswer(result.Correct)
	if result.Advanced {
		u.metrics.ObserveQuestion(session.CurrentRegion.Name)
		log.Printf("✅ 正解 (ID: %s) 次の問題へ", sessionID)
	} else {
		log.Printf("❌ 不正解 (ID: %s)", sessionID)
	}

	return &model.AnswerResponse{
		AnswerResult: result,
		State:        model.NewQuizState(session),
	}, nil
}

func (u *quizUseCaseImpl) GetScene(ctx context.Context, sessionID string) (*model.SceneSnapshot, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("セッションの取得に失敗: %w", err)
	}

	u.mu.Lock()
	graph := u.ensureScene(session)
	u.mu.Unlock()

	snapshot := graph.Snapshot()
	return &snapshot, nil
}

func (u *quizUseCaseImpl) EndSession(ctx context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("セッションの削除に失敗: %w", err)
	}
	u.scenes.Remove(sessionID)
	u.metrics.SetActiveSessions(u.scenes.Len())
	log.Printf("👋 クイズセッション終了 (ID: %s)", sessionID)
	return nil
}

func (u *quizUseCaseImpl) ForgetScenes(sessionIDs []string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, id := range sessionIDs {
		u.scenes.Remove(id)
	}
	u.metrics.SetActiveSessions(u.scenes.Len())
}

// ensureScene は別インスタンスで作られたセッションでもシーンを復元する
func (u *quizUseCaseImpl) ensureScene(session *model.QuizSession) *scene.Graph {
	if graph, ok := u.scenes.Get(session.ID); ok {
		return graph
	}
	graph := u.scenes.Ensure(session)
	u.watchFrames(graph)
	u.metrics.SetActiveSessions(u.scenes.Len())
	return graph
}

func (u *quizUseCaseImpl) watchFrames(graph *scene.Graph) {
	graph.OnFrame(func(time.Duration) {
		u.metrics.ObserveFrame()
	})
}
