package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"DialectGlobe-App/internal/observability"
)

// RouterConfig は静的ファイルの配置
type RouterConfig struct {
	StaticDir   string // index.html と app.js を置くディレクトリ
	TexturePath string // 地球儀テクスチャのファイルパス
	RegionCount int
}

// TextureURL はテクスチャを配信するURL
func TextureURL(texturePath string) string {
	return "/assets/" + filepath.Base(texturePath)
}

// NewRouter はAPIと静的ページのルーティングを設定する
// metricsがnilなら/metricsは登録しない
func NewRouter(cfg RouterConfig, quizHandler *QuizHandler, metrics *observability.QuizCollector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if metrics != nil {
		r.Use(metrics.GinMiddleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "DialectGlobe-App",
			"regions": cfg.RegionCount,
		})
	})

	quiz := r.Group("/quiz")
	{
		quiz.POST("/sessions", quizHandler.StartSession)
		quiz.GET("/sessions/:id", quizHandler.GetSession)
		quiz.POST("/sessions/:id/answers", quizHandler.SubmitAnswer)
		quiz.GET("/sessions/:id/scene", quizHandler.GetScene)
		quiz.DELETE("/sessions/:id", quizHandler.EndSession)
	}

	// テクスチャが無い場合は404になり、ブラウザ側は無地の球体で描画する
	if cfg.TexturePath != "" {
		r.Static("/assets", filepath.Dir(cfg.TexturePath))
	}
	if cfg.StaticDir != "" {
		r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
		r.Static("/web", cfg.StaticDir)
	}

	return r
}
