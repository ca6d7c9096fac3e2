package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/usecase"
)

// QuizHandler はクイズAPIのハンドラー
type QuizHandler struct {
	quizUseCase usecase.QuizUseCase
}

// NewQuizHandler は新しいQuizHandlerインスタンスを作成
func NewQuizHandler(quizUseCase usecase.QuizUseCase) *QuizHandler {
	return &QuizHandler{
		quizUseCase: quizUseCase,
	}
}

// StartSession はセッションを作成して最初の問題を返す
// POST /quiz/sessions
func (h *QuizHandler) StartSession(c *gin.Context) {
	state, err := h.quizUseCase.StartSession(c.Request.Context())
	if err != nil {
		respondError(c, err, "クイズセッションの作成に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, state)
}

// GetSession は現在の問題と結果表示を返す
// GET /quiz/sessions/:id
func (h *QuizHandler) GetSession(c *gin.Context) {
	state, err := h.quizUseCase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "クイズセッションの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitAnswer は回答を採点する
// POST /quiz/sessions/:id/answers
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req model.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// 空文字も有効な回答として採点する（不正解になるだけ）
	response, err := h.quizUseCase.SubmitAnswer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		respondError(c, err, "回答の採点に失敗しました")
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetScene はブラウザのレンダラー向けにシーン状態を返す
// GET /quiz/sessions/:id/scene
func (h *QuizHandler) GetScene(c *gin.Context) {
	snapshot, err := h.quizUseCase.GetScene(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "シーンの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// EndSession はセッションを破棄する
// DELETE /quiz/sessions/:id
func (h *QuizHandler) EndSession(c *gin.Context) {
	if err := h.quizUseCase.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "クイズセッションの削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError はエラーの種類からステータスコードを決める
func respondError(c *gin.Context, err error, message string) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		code = http.StatusNotFound
		message = "クイズセッションが見つかりません"
	case errors.Is(err, model.ErrNoCurrentRegion):
		code = http.StatusConflict
	}

	c.JSON(code, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
