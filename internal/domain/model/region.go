package model

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// ErrEmptyCatalog 地域カタログが空の場合のエラー
var ErrEmptyCatalog = errors.New("地域カタログが空です")

// Region クイズの出題対象となる地域
type Region struct {
	Name        string    `json:"name"`
	Coordinates orb.Point `json:"coordinates"` // orb.Point は [lng, lat]
	Dialect     string    `json:"dialect"`
}

// NewRegion 緯度・経度の順で地域を作成する
func NewRegion(name string, lat, lng float64, dialect string) Region {
	return Region{
		Name:        name,
		Coordinates: orb.Point{lng, lat},
		Dialect:     dialect,
	}
}

// Latitude 緯度
func (r Region) Latitude() float64 { return r.Coordinates.Lat() }

// Longitude 経度
func (r Region) Longitude() float64 { return r.Coordinates.Lon() }

// RegionCatalog 起動時に確定する読み取り専用の地域一覧
type RegionCatalog struct {
	regions []Region
}

// NewRegionCatalog 地域一覧を検証してカタログを作成する
func NewRegionCatalog(regions []Region) (*RegionCatalog, error) {
	if len(regions) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, r := range regions {
		if r.Name == "" {
			return nil, fmt.Errorf("地域%dの名前が空です", i)
		}
		if r.Dialect == "" {
			return nil, fmt.Errorf("地域 %s の方言が空です", r.Name)
		}
	}

	copied := make([]Region, len(regions))
	copy(copied, regions)
	return &RegionCatalog{regions: copied}, nil
}

// Len 地域数
func (c *RegionCatalog) Len() int { return len(c.regions) }

// At i番目の地域
func (c *RegionCatalog) At(i int) Region { return c.regions[i] }

// All 地域一覧のコピーを返す
func (c *RegionCatalog) All() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// Contains 地域がカタログに含まれるか
func (c *RegionCatalog) Contains(r Region) bool {
	for _, candidate := range c.regions {
		if candidate == r {
			return true
		}
	}
	return false
}

// FindByName 名前で地域を検索する
func (c *RegionCatalog) FindByName(name string) (Region, bool) {
	for _, r := range c.regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}
