package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"DialectGlobe-App/internal/domain/model"
)

// QuizOptions はクイズの挙動設定
type QuizOptions struct {
	// MarkerMode 前のマーカーを消すか残すか（既定はlatest）
	MarkerMode model.MarkerMode
	// AvoidRepeat 直前と同じ地域を続けて出題しない
	AvoidRepeat bool
	// Rand 地域選択に使う乱数（nilなら時刻から生成）
	Rand *rand.Rand
	// Now 現在時刻（テスト用）
	Now func() time.Time
}

// QuizService は出題と採点を行うクイズコントローラー
// 状態はすべて引数のQuizSessionが持つ
type QuizService struct {
	catalog *model.RegionCatalog
	placer  *MarkerPlacer
	opts    QuizOptions

	mu  sync.Mutex // rngを保護
	rng *rand.Rand
}

// NewQuizService 新しいQuizServiceを作成
func NewQuizService(catalog *model.RegionCatalog, placer *MarkerPlacer, opts QuizOptions) *QuizService {
	if opts.MarkerMode == "" {
		opts.MarkerMode = model.MarkerModeLatest
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if placer == nil {
		placer = NewMarkerPlacer()
	}

	return &QuizService{
		catalog: catalog,
		placer:  placer,
		opts:    opts,
		rng:     rng,
	}
}

// Catalog 出題対象の地域カタログ
func (s *QuizService) Catalog() *model.RegionCatalog {
	return s.catalog
}

// NewSession 新しいセッションを作成し、最初の問題を出題する
func (s *QuizService) NewSession(id string, host SceneHost) *model.QuizSession {
	now := s.opts.Now()
	session := &model.QuizSession{
		ID:        id,
		Markers:   []model.Marker{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.ShowRandomRegion(session, host)
	return session
}

// ShowRandomRegion ランダムに地域を選び、視点を合わせてマーカーを置き、問題文を更新する
func (s *QuizService) ShowRandomRegion(session *model.QuizSession, host SceneHost) {
	region := s.pickRegion(session.CurrentRegion)
	session.CurrentRegion = &region

	target := PointToVector3(region.Coordinates, model.MarkerSurfaceRadius)
	host.SetLookAtTarget(target)
	session.Target = target

	if s.opts.MarkerMode == model.MarkerModeLatest {
		for _, m := range session.Markers {
			host.RemoveSceneNode(m.ID)
		}
		session.Markers = session.Markers[:0]
	}

	marker := s.placer.PlaceMarker(host, region.Latitude(), region.Longitude())
	session.Markers = append(session.Markers, marker)

	session.Question = model.QuestionPrompt
	session.UpdatedAt = s.opts.Now()
}

// SubmitAnswer 回答を前後の空白除去と大文字小文字の畳み込みだけで完全一致判定する
// 正解なら次の問題へ進み、不正解なら同じ問題のまま正解を表示する
// どちらの場合も回答欄は空になる
func (s *QuizService) SubmitAnswer(session *model.QuizSession, host SceneHost, raw string) (model.AnswerResult, error) {
	if session.CurrentRegion == nil {
		return model.AnswerResult{}, model.ErrNoCurrentRegion
	}

	var result model.AnswerResult
	dialect := session.CurrentRegion.Dialect
	if normalizeAnswer(raw) == foldCase(dialect) {
		session.Result = model.CorrectMessage
		s.ShowRandomRegion(session, host)
		result = model.AnswerResult{Correct: true, Advanced: true, Message: session.Result}
	} else {
		session.Result = fmt.Sprintf(model.WrongMessageFormat, dialect)
		result = model.AnswerResult{Message: session.Result}
	}

	session.Answer = ""
	session.UpdatedAt = s.opts.Now()
	return result, nil
}

func (s *QuizService) pickRegion(current *model.Region) model.Region {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opts.AvoidRepeat || current == nil || s.catalog.Len() < 2 {
		return s.catalog.At(s.rng.IntN(s.catalog.Len()))
	}

	candidates := make([]model.Region, 0, s.catalog.Len())
	for _, r := range s.catalog.All() {
		if r != *current {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return *current
	}
	return candidates[s.rng.IntN(len(candidates))]
}

func normalizeAnswer(raw string) string {
	return foldCase(strings.TrimSpace(raw))
}

// cases.Caserはゴルーチン間で共有できないので毎回作る
func foldCase(s string) string {
	return cases.Fold().String(s)
}
