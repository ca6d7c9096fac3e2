package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/service"
	"DialectGlobe-App/internal/infrastructure/scene"
	"DialectGlobe-App/internal/observability"
	repoImpl "DialectGlobe-App/internal/repository"
)

type testEnv struct {
	useCase     QuizUseCase
	quizService *service.QuizService
	repo        *repoImpl.MemorySessionRepository
	scenes      *scene.Registry
	metrics     *observability.QuizCollector
}

func newTestEnv(t *testing.T, mode model.MarkerMode) *testEnv {
	t.Helper()
	regions, err := repoImpl.NewStaticRegionRepository().GetAll(context.Background())
	require.NoError(t, err)
	catalog, err := model.NewRegionCatalog(regions)
	require.NoError(t, err)

	metrics, err := observability.NewQuizCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	quizService := service.NewQuizService(catalog, service.NewMarkerPlacer(), service.QuizOptions{
		MarkerMode: mode,
		Rand:       rand.New(rand.NewPCG(7, 11)),
	})
	repo := repoImpl.NewMemorySessionRepository(time.Hour)
	scenes := scene.NewRegistry("/assets/earth.jpg")

	return &testEnv{
		useCase:     NewQuizUseCase(quizService, repo, scenes, metrics),
		quizService: quizService,
		repo:        repo,
		scenes:      scenes,
		metrics:     metrics,
	}
}

// flakySessionRepository はfailSavesの回数だけSaveを失敗させる
type flakySessionRepository struct {
	*repoImpl.MemorySessionRepository
	failSaves int
}

func (r *flakySessionRepository) Save(ctx context.Context, session *model.QuizSession) error {
	if r.failSaves > 0 {
		r.failSaves--
		return errors.New("write unavailable")
	}
	return r.MemorySessionRepository.Save(ctx, session)
}

func (e *testEnv) currentRegion(t *testing.T, id string) model.Region {
	t.Helper()
	session, err := e.repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.CurrentRegion)
	return *session.CurrentRegion
}

func TestStartSession(t *testing.T) {
	env := newTestEnv(t, model.MarkerModeLatest)

	state, err := env.useCase.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, model.QuestionPrompt, state.Question)
	assert.Empty(t, state.Result)
	require.NotNil(t, state.Marker)
	assert.Len(t, state.Markers, 1)

	graph, ok := env.scenes.Get(state.SessionID)
	require.True(t, ok)
	assert.Equal(t, 1, graph.NodeCount())
	assert.Equal(t, state.Target, graph.Snapshot().Target)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ActiveSessions))
}

func TestSubmitAnswer_CorrectAdvances(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, model.MarkerModeLatest)
	state, err := env.useCase.StartSession(ctx)
	require.NoError(t, err)

	region := env.currentRegion(t, state.SessionID)
	res, err := env.useCase.SubmitAnswer(ctx, state.SessionID, "  "+region.Dialect+" ")
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.True(t, res.Advanced)
	assert.Equal(t, model.CorrectMessage, res.State.Result)
	assert.Empty(t, res.State.Answer)
	assert.Len(t, res.State.Markers, 1)
	assert.NotEqual(t, state.Marker.ID, res.State.Marker.ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Answers.WithLabelValues("correct")))
}

func TestSubmitAnswer_WrongKeepsQuestion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, model.MarkerModeLatest)
	state, err := env.useCase.StartSession(ctx)
	require.NoError(t, err)

	before := env.currentRegion(t, state.SessionID)
	res, err := env.useCase.SubmitAnswer(ctx, state.SessionID, "Klingon")
	require.NoError(t, err)

	assert.False(t, res.Correct)
	assert.Equal(t, "Wrong! The correct answer is "+before.Dialect+".", res.State.Result)
	assert.Equal(t, before, env.currentRegion(t, state.SessionID))
	assert.Equal(t, state.Marker.ID, res.State.Marker.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Answers.WithLabelValues("wrong")))
}

func TestSubmitAnswer_TrailModeKeepsMarkers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, model.MarkerModeTrail)
	state, err := env.useCase.StartSession(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		region := env.currentRegion(t, state.SessionID)
		_, err := env.useCase.SubmitAnswer(ctx, state.SessionID, region.Dialect)
		require.NoError(t, err)
	}

	snapshot, err := env.useCase.GetScene(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Len(t, snapshot.Markers, 4)
}

func TestGetScene_RestoresMissingGraph(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, model.MarkerModeLatest)
	state, err := env.useCase.StartSession(ctx)
	require.NoError(t, err)

	// 別インスタンスで作られたセッションを想定
	env.scenes.Remove(state.SessionID)

	snapshot, err := env.useCase.GetScene(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, state.Target, snapshot.Target)
	assert.Equal(t, state.Target, snapshot.LookAt)
	assert.Len(t, snapshot.Markers, 1)
	assert.Equal(t, "/assets/earth.jpg", snapshot.Globe.Texture)
}

func TestUnknownSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, model.MarkerModeLatest)

	_, err := env.useCase.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	_, err = env.useCase.SubmitAnswer(ctx, "missing", "French")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	_, err = env.useCase.GetScene(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.ErrorIs(t, env.useCase.EndSession(ctx, "missing"), model.ErrSessionNotFound)
}

func TestEndSessionAndForgetScenes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, model.MarkerModeLatest)
	a, err := env.useCase.StartSession(ctx)
	require.NoError(t, err)
	b, err := env.useCase.StartSession(ctx)
	require.NoError(t, err)

	require.NoError(t, env.useCase.EndSession(ctx, a.SessionID))
	_, ok := env.scenes.Get(a.SessionID)
	assert.False(t, ok)

	env.useCase.ForgetScenes([]string{b.SessionID})
	assert.Equal(t, 0, env.scenes.Len())
	assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.ActiveSessions))
}

func TestFramesAreCounted(t *testing.T) {
	env := newTestEnv(t, model.MarkerModeLatest)
	_, err := env.useCase.StartSession(context.Background())
	require.NoError(t, err)

	env.scenes.StepAll(16 * time.Millisecond)
	env.scenes.StepAll(16 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.FramesRendered))
}

func TestSubmitAnswer_SaveFailureResyncsScene(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, model.MarkerModeLatest)
	flaky := &flakySessionRepository{MemorySessionRepository: env.repo}
	useCase := NewQuizUseCase(env.quizService, flaky, env.scenes, env.metrics)

	state, err := useCase.StartSession(ctx)
	require.NoError(t, err)
	stored := env.currentRegion(t, state.SessionID)

	flaky.failSaves = 1
	_, err = useCase.SubmitAnswer(ctx, state.SessionID, stored.Dialect)
	require.Error(t, err)
	assert.Equal(t, stored, env.currentRegion(t, state.SessionID))

	// 保存に失敗した採点結果はシーンに残らない
	snapshot, err := useCase.GetScene(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, state.Target, snapshot.Target)
	require.Len(t, snapshot.Markers, 1)
	assert.Equal(t, state.Marker.ID, snapshot.Markers[0].ID)

	res, err := useCase.SubmitAnswer(ctx, state.SessionID, stored.Dialect)
	require.NoError(t, err)
	assert.True(t, res.Correct)

	graph, ok := env.scenes.Get(state.SessionID)
	require.True(t, ok)
	assert.Equal(t, 1, graph.NodeCount())
	assert.Equal(t, res.State.Target, graph.Snapshot().Target)
}
