package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"DialectGlobe-App/internal/config"
	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/repository"
	"DialectGlobe-App/internal/domain/service"
	"DialectGlobe-App/internal/handler"
	"DialectGlobe-App/internal/infrastructure/database"
	"DialectGlobe-App/internal/infrastructure/firestore"
	"DialectGlobe-App/internal/infrastructure/scene"
	"DialectGlobe-App/internal/observability"
	repoImpl "DialectGlobe-App/internal/repository"
	"DialectGlobe-App/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込み失敗: %v", err)
	}

	// 地域カタログ（起動時に一度だけ読み込む）
	regionRepo, closeRegions, err := newRegionRepository(cfg)
	if err != nil {
		log.Fatalf("地域リポジトリの初期化失敗: %v", err)
	}
	regions, err := regionRepo.GetAll(ctx)
	closeRegions()
	if err != nil {
		log.Fatalf("地域カタログの読み込み失敗: %v", err)
	}
	catalog, err := model.NewRegionCatalog(regions)
	if err != nil {
		log.Fatalf("地域カタログの検証失敗: %v", err)
	}
	log.Printf("🗺️ 地域カタログ読み込み完了 (%s, %d件)", cfg.RegionSource, catalog.Len())

	metrics, err := observability.NewQuizCollector(nil)
	if err != nil {
		log.Fatalf("メトリクスの初期化失敗: %v", err)
	}

	scenes := scene.NewRegistry(handler.TextureURL(cfg.TexturePath))
	quizService := service.NewQuizService(catalog, service.NewMarkerPlacer(), service.QuizOptions{
		MarkerMode:  cfg.MarkerMode,
		AvoidRepeat: cfg.AvoidRepeat,
	})

	sessionRepo, closeSessions, janitor, err := newSessionRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("セッションリポジトリの初期化失敗: %v", err)
	}
	defer closeSessions()

	quizUseCase := usecase.NewQuizUseCase(quizService, sessionRepo, scenes, metrics)
	if janitor != nil {
		go janitor.RunJanitor(ctx, time.Minute, quizUseCase.ForgetScenes)
	}
	go scenes.Run(ctx, cfg.FrameRate)

	router := handler.NewRouter(handler.RouterConfig{
		StaticDir:   cfg.StaticDir,
		TexturePath: cfg.TexturePath,
		RegionCount: catalog.Len(),
	}, handler.NewQuizHandler(quizUseCase), metrics)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ サーバー停止時のエラー: %v", err)
		}
	}()

	log.Printf("🚀 DialectGlobe-App server starting on :%s...", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("サーバーエラー: %v", err)
	}
	log.Printf("👋 サーバー停止")
}

func newRegionRepository(cfg *config.Config) (repository.RegionRepository, func(), error) {
	switch cfg.RegionSource {
	case config.RegionSourcePostgres:
		client, err := database.NewPostgreSQLClientWithRetry(5, 2*time.Second)
		if err != nil {
			return nil, nil, err
		}
		return repoImpl.NewPostgresRegionRepository(client), func() { client.Close() }, nil
	case config.RegionSourceSupabase:
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(repoImpl.RegionsTable); err != nil {
			return nil, nil, err
		}
		return repoImpl.NewSupabaseRegionRepository(client), func() {}, nil
	case config.RegionSourceStatic:
		return repoImpl.NewStaticRegionRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("未対応のREGION_SOURCE: %s", cfg.RegionSource)
}

func newSessionRepository(ctx context.Context, cfg *config.Config) (repository.SessionRepository, func(), *repoImpl.MemorySessionRepository, error) {
	switch cfg.SessionStore {
	case config.SessionStoreFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Printf("⚠️ Firestoreクライアントのクローズ失敗: %v", err)
			}
		}
		return repoImpl.NewFirestoreSessionRepository(client.GetClient(), cfg.SessionTTL), closeFn, nil, nil
	case config.SessionStoreMemory:
		repo := repoImpl.NewMemorySessionRepository(cfg.SessionTTL)
		return repo, func() {}, repo, nil
	}
	return nil, nil, nil, fmt.Errorf("未対応のSESSION_STORE: %s", cfg.SessionStore)
}
