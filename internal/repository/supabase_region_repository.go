package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/repository"
	"DialectGlobe-App/internal/infrastructure/database"
)

type SupabaseRegionRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseRegionRepository(client *database.SupabaseClient) repository.RegionRepository {
	return &SupabaseRegionRepository{
		client: client,
	}
}

func (r *SupabaseRegionRepository) GetAll(ctx context.Context) ([]model.Region, error) {
	data, _, err := r.client.GetClient().From(RegionsTable).
		Select("name,latitude,longitude,dialect", "exact", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("地域データの取得失敗: %w", err)
	}

	var rows []regionRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("地域データのJSONアンマーシャル失敗: %w", err)
	}

	return rowsToRegions(rows), nil
}
