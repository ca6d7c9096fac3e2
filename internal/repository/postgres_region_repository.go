package repository

import (
	"context"
	"fmt"

	"DialectGlobe-App/internal/domain/model"
	"DialectGlobe-App/internal/domain/repository"
	"DialectGlobe-App/internal/infrastructure/database"
)

type PostgresRegionRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresRegionRepository(client *database.PostgreSQLClient) repository.RegionRepository {
	return &PostgresRegionRepository{
		client: client,
	}
}

func (r *PostgresRegionRepository) GetAll(ctx context.Context) ([]model.Region, error) {
	query := `SELECT name, latitude, longitude, dialect FROM ` + RegionsTable + ` ORDER BY name`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("地域データの取得失敗: %w", err)
	}
	defer rows.Close()

	var results []regionRow
	for rows.Next() {
		var row regionRow
		if err := rows.Scan(&row.Name, &row.Latitude, &row.Longitude, &row.Dialect); err != nil {
			return nil, fmt.Errorf("地域データのスキャン失敗: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("地域データの読み込み失敗: %w", err)
	}

	return rowsToRegions(results), nil
}
