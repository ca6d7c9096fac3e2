package repository

import (
	"context"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/repository"
)

// DefaultRegions 組み込みの出題地域
func DefaultRegions() []model.Region {
	return []model.Region{
		model.NewRegion("London", 51.505, -0.09, "British English"),
		model.NewRegion("Paris", 48.8566, 2.3522, "French"),
		model.NewRegion("New York", 40.7128, -74.0060, "American English"),
		model.NewRegion("Tokyo", 35.6895, 139.6917, "Japanese"),
	}
}

// StaticRegionRepository メモリ上の固定リストを返すリポジトリ
type StaticRegionRepository struct {
	regions []model.Region
}

// NewStaticRegionRepository 組み込みの地域一覧を持つリポジトリを作成
func NewStaticRegionRepository() repository.RegionRepository {
	return &StaticRegionRepository{regions: DefaultRegions()}
}

func (r *StaticRegionRepository) GetAll(ctx context.Context) ([]model.Region, error) {
	out := make([]model.Region, len(r.regions))
	copy(out, r.regions)
	return out, nil
}
