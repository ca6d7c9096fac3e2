package model

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrSessionNotFound セッションが存在しない（期限切れを含む）
	ErrSessionNotFound = errors.New("クイズセッションが見つかりません")
	// ErrNoCurrentRegion 出題中の地域が未設定
	ErrNoCurrentRegion = errors.New("出題中の地域が設定されていません")
)

// QuizSession 1人分のクイズ状態
// CurrentRegion は初回出題以降nilにならない
type QuizSession struct {
	ID            string     `json:"id"`
	CurrentRegion *Region    `json:"current_region"`
	Markers       []Marker   `json:"markers"`
	Target        mgl64.Vec3 `json:"target"`
	Question      string     `json:"question"`
	Result        string     `json:"result"`
	Answer        string     `json:"answer"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// LatestMarker 最後に置いたマーカー
func (s *QuizSession) LatestMarker() (Marker, bool) {
	if len(s.Markers) == 0 {
		return Marker{}, false
	}
	return s.Markers[len(s.Markers)-1], true
}

// AnswerResult 回答の判定結果
type AnswerResult struct {
	Correct  bool   `json:"correct"`
	Advanced bool   `json:"advanced"`
	Message  string `json:"message"`
}

// AnswerRequest POST /quiz/sessions/:id/answers のリクエスト
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// QuizState クライアントに返す画面状態（方言は含めない）
type QuizState struct {
	SessionID string     `json:"session_id"`
	Question  string     `json:"question"`
	Result    string     `json:"result"`
	Answer    string     `json:"answer"`
	Target    mgl64.Vec3 `json:"target"`
	Marker    *Marker    `json:"marker,omitempty"`
	Markers   []Marker   `json:"markers"`
}

// NewQuizState セッションから画面状態を作成
func NewQuizState(s *QuizSession) *QuizState {
	state := &QuizState{
		SessionID: s.ID,
		Question:  s.Question,
		Result:    s.Result,
		Answer:    s.Answer,
		Target:    s.Target,
		Markers:   append([]Marker{}, s.Markers...),
	}
	if m, ok := s.LatestMarker(); ok {
		state.Marker = &m
	}
	return state
}

// AnswerResponse 回答APIのレスポンス
type AnswerResponse struct {
	AnswerResult
	State *QuizState `json:"state"`
}

// Clone 保存用のディープコピー
func (s *QuizSession) Clone() *QuizSession {
	c := *s
	if s.CurrentRegion != nil {
		region := *s.CurrentRegion
		c.CurrentRegion = &region
	}
	c.Markers = append([]Marker{}, s.Markers...)
	return &c
}
