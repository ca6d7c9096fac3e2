package repository

import (
	"DialectGlobe-App/internal/domain/model"
)

// RegionsTable 地域カタログのテーブル名
// 列はname, latitude, longitude, dialectで、どの読み込み元もnameの昇順で返す
const RegionsTable = "regions"

// regionRow regionsテーブルの1行
type regionRow struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Dialect   string  `json:"dialect"`
}

func (row regionRow) toRegion() model.Region {
	return model.NewRegion(row.Name, row.Latitude, row.Longitude, row.Dialect)
}

func rowsToRegions(rows []regionRow) []model.Region {
	regions := make([]model.Region, 0, len(rows))
	for _, row := range rows {
		regions = append(regions, row.toRegion())
	}
	return regions
}
