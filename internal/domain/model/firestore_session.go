package model

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// FirestoreRegion Firestore保存用の地域
type FirestoreRegion struct {
	Name      string  `firestore:"name"`
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
	Dialect   string  `firestore:"dialect"`
}

// FirestoreMarker Firestore保存用のマーカー
type FirestoreMarker struct {
	ID       string    `firestore:"id"`
	Position []float64 `firestore:"position"`
	Radius   float64   `firestore:"radius"`
	Segments int       `firestore:"segments"`
	Color    int       `firestore:"color"`
}

// FirestoreQuizSession Firestore保存用のセッション（スコアや履歴は持たない）
type FirestoreQuizSession struct {
	CurrentRegion *FirestoreRegion  `firestore:"current_region"`
	Markers       []FirestoreMarker `firestore:"markers"`
	Target        []float64         `firestore:"target"`
	Question      string            `firestore:"question"`
	Result        string            `firestore:"result"`
	Answer        string            `firestore:"answer"`
	CreatedAt     time.Time         `firestore:"created_at"`
	UpdatedAt     time.Time         `firestore:"updated_at"`
	ExpireAt      time.Time         `firestore:"expireAt"`
}

// ToFirestoreQuizSession TTL付きのFirestore保存形式に変換
func (s *QuizSession) ToFirestoreQuizSession(ttl time.Duration) *FirestoreQuizSession {
	fs := &FirestoreQuizSession{
		Markers:   make([]FirestoreMarker, 0, len(s.Markers)),
		Target:    s.Target[:],
		Question:  s.Question,
		Result:    s.Result,
		Answer:    s.Answer,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		ExpireAt:  s.UpdatedAt.Add(ttl),
	}
	if r := s.CurrentRegion; r != nil {
		fs.CurrentRegion = &FirestoreRegion{
			Name:      r.Name,
			Latitude:  r.Latitude(),
			Longitude: r.Longitude(),
			Dialect:   r.Dialect,
		}
	}
	for _, m := range s.Markers {
		fs.Markers = append(fs.Markers, FirestoreMarker{
			ID:       m.ID,
			Position: m.Position[:],
			Radius:   m.Radius,
			Segments: m.Segments,
			Color:    m.Color,
		})
	}
	return fs
}

// ToQuizSession Firestoreの保存形式からセッションに戻す
func (fs *FirestoreQuizSession) ToQuizSession(id string) *QuizSession {
	s := &QuizSession{
		ID:        id,
		Markers:   make([]Marker, 0, len(fs.Markers)),
		Target:    toVec3(fs.Target),
		Question:  fs.Question,
		Result:    fs.Result,
		Answer:    fs.Answer,
		CreatedAt: fs.CreatedAt,
		UpdatedAt: fs.UpdatedAt,
	}
	if r := fs.CurrentRegion; r != nil {
		region := NewRegion(r.Name, r.Latitude, r.Longitude, r.Dialect)
		s.CurrentRegion = &region
	}
	for _, m := range fs.Markers {
		s.Markers = append(s.Markers, Marker{
			ID:       m.ID,
			Position: toVec3(m.Position),
			Radius:   m.Radius,
			Segments: m.Segments,
			Color:    m.Color,
		})
	}
	return s
}

func toVec3(v []float64) mgl64.Vec3 {
	var out mgl64.Vec3
	copy(out[:], v)
	return out
}
