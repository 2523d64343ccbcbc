package dao

import (
	"context"

	"gorm.io/gorm"
)

type Airport struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:60;unique;not null"`
	ClosestBigCity string `gorm:"size:60;not null"`
}

type AirportDAO struct {
	db *gorm.DB
}

func NewAirportDAO(db *gorm.DB) *AirportDAO {
	return &AirportDAO{
		db: db,
	}
}

func (d *AirportDAO) Insert(ctx context.Context, airport Airport) (Airport, error) {
	result := d.db.WithContext(ctx).Create(&airport)
	if result.Error != nil {
		return Airport{}, translate(result.Error, ErrAirportNotFound, ErrAirportNameExists)
	}

	return airport, nil
}

func (d *AirportDAO) Update(ctx context.Context, airport Airport) (Airport, error) {
	result := d.db.WithContext(ctx).Model(&airport).Select("Name", "ClosestBigCity").Updates(&airport)
	if result.Error != nil {
		return Airport{}, translate(result.Error, ErrAirportNotFound, ErrAirportNameExists)
	}
	if result.RowsAffected == 0 {
		return Airport{}, ErrAirportNotFound
	}

	return airport, nil
}

func (d *AirportDAO) FindByID(ctx context.Context, id uint) (Airport, error) {
	var airport Airport

	result := d.db.WithContext(ctx).First(&airport, id)
	if result.Error != nil {
		return Airport{}, translate(result.Error, ErrAirportNotFound, nil)
	}

	return airport, nil
}

func (d *AirportDAO) FindAll(ctx context.Context, page Page) ([]Airport, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Airport{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var airports []Airport
	result := d.db.WithContext(ctx).Order("name").Scopes(paginate(page)).Find(&airports)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return airports, total, nil
}

// Delete removes the airport; routes from or to it cascade.
func (d *AirportDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Airport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirportNotFound
	}

	return nil
}
