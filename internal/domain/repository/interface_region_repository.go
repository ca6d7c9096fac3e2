package repository

import (
	"context"

	"DialectGlobe-App/internal/domain/model"
)

// RegionRepository は出題地域の読み込み元
type RegionRepository interface {
	GetAll(ctx context.Context) ([]model.Region, error)
}
