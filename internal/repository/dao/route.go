package dao

import (
	"context"

	"gorm.io/gorm"
)

type Route struct {
	ID            uint    `gorm:"primaryKey"`
	SourceID      uint    `gorm:"not null;uniqueIndex:idx_routes_endpoints"`
	Source        Airport `gorm:"constraint:OnDelete:CASCADE"`
	DestinationID uint    `gorm:"not null;uniqueIndex:idx_routes_endpoints;check:chk_routes_endpoints,source_id <> destination_id"`
	Destination   Airport `gorm:"constraint:OnDelete:CASCADE"`
	Distance      int     `gorm:"not null;check:chk_routes_distance,distance > 0"`
}

// RouteFilter matches the closest big city of either endpoint.
type RouteFilter struct {
	Source      string
	Destination string
}

func (f RouteFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Source != "" {
		db = db.Joins("JOIN airports AS src ON src.id = routes.source_id").
			Where("LOWER(src.closest_big_city) "+ilike, contains(f.Source))
	}
	if f.Destination != "" {
		db = db.Joins("JOIN airports AS dst ON dst.id = routes.destination_id").
			Where("LOWER(dst.closest_big_city) "+ilike, contains(f.Destination))
	}

	return db
}

type RouteDAO struct {
	db *gorm.DB
}

func NewRouteDAO(db *gorm.DB) *RouteDAO {
	return &RouteDAO{
		db: db,
	}
}

func (d *RouteDAO) Insert(ctx context.Context, route Route) (Route, error) {
	result := d.db.WithContext(ctx).Omit("Source", "Destination").Create(&route)
	if result.Error != nil {
		return Route{}, translate(result.Error, ErrRouteNotFound, ErrRouteExists)
	}

	return route, nil
}

func (d *RouteDAO) Update(ctx context.Context, route Route) (Route, error) {
	result := d.db.WithContext(ctx).Model(&route).
		Select("SourceID", "DestinationID", "Distance").
		Updates(&route)
	if result.Error != nil {
		return Route{}, translate(result.Error, ErrRouteNotFound, ErrRouteExists)
	}
	if result.RowsAffected == 0 {
		return Route{}, ErrRouteNotFound
	}

	return route, nil
}

func (d *RouteDAO) FindByID(ctx context.Context, id uint) (Route, error) {
	var route Route

	result := d.db.WithContext(ctx).Preload("Source").Preload("Destination").First(&route, id)
	if result.Error != nil {
		return Route{}, translate(result.Error, ErrRouteNotFound, nil)
	}

	return route, nil
}

func (d *RouteDAO) FindAll(ctx context.Context, filter RouteFilter, page Page) ([]Route, int64, error) {
	var total int64
	if err := filter.apply(d.db.WithContext(ctx).Model(&Route{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var routes []Route
	result := filter.apply(d.db.WithContext(ctx)).
		Preload("Source").
		Preload("Destination").
		Order("routes.source_id").
		Order("routes.id").
		Scopes(paginate(page)).
		Find(&routes)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return routes, total, nil
}

// Delete removes the route; its flights cascade.
func (d *RouteDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Route{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}

	return nil
}
