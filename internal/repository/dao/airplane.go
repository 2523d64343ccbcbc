package dao

import (
	"context"

	"gorm.io/gorm"
)

type AirplaneType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:60;unique;not null"`
}

type Airplane struct {
	ID         uint         `gorm:"primaryKey"`
	Name       string       `gorm:"size:60;not null"`
	TypeID     uint         `gorm:"not null;index"`
	Type       AirplaneType `gorm:"constraint:OnDelete:CASCADE"`
	Rows       int          `gorm:"not null"`
	SeatsInRow int          `gorm:"not null"`
}

// AirplaneFilter matches the airplane name and its type name as substrings.
type AirplaneFilter struct {
	Name string
	Type string
}

func (f AirplaneFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where("LOWER(airplanes.name) "+ilike, contains(f.Name))
	}
	if f.Type != "" {
		db = db.Joins("JOIN airplane_types ON airplane_types.id = airplanes.type_id").
			Where("LOWER(airplane_types.name) "+ilike, contains(f.Type))
	}

	return db
}

type AirplaneTypeDAO struct {
	db *gorm.DB
}

func NewAirplaneTypeDAO(db *gorm.DB) *AirplaneTypeDAO {
	return &AirplaneTypeDAO{
		db: db,
	}
}

func (d *AirplaneTypeDAO) Insert(ctx context.Context, airplaneType AirplaneType) (AirplaneType, error) {
	result := d.db.WithContext(ctx).Create(&airplaneType)
	if result.Error != nil {
		return AirplaneType{}, translate(result.Error, ErrAirplaneTypeNotFound, ErrAirplaneTypeExists)
	}

	return airplaneType, nil
}

func (d *AirplaneTypeDAO) Update(ctx context.Context, airplaneType AirplaneType) (AirplaneType, error) {
	result := d.db.WithContext(ctx).Model(&airplaneType).Select("Name").Updates(&airplaneType)
	if result.Error != nil {
		return AirplaneType{}, translate(result.Error, ErrAirplaneTypeNotFound, ErrAirplaneTypeExists)
	}
	if result.RowsAffected == 0 {
		return AirplaneType{}, ErrAirplaneTypeNotFound
	}

	return airplaneType, nil
}

func (d *AirplaneTypeDAO) FindByID(ctx context.Context, id uint) (AirplaneType, error) {
	var airplaneType AirplaneType

	result := d.db.WithContext(ctx).First(&airplaneType, id)
	if result.Error != nil {
		return AirplaneType{}, translate(result.Error, ErrAirplaneTypeNotFound, nil)
	}

	return airplaneType, nil
}

func (d *AirplaneTypeDAO) FindAll(ctx context.Context, page Page) ([]AirplaneType, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&AirplaneType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var types []AirplaneType
	result := d.db.WithContext(ctx).Order("name").Scopes(paginate(page)).Find(&types)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return types, total, nil
}

// Delete removes the type; airplanes of that type cascade.
func (d *AirplaneTypeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&AirplaneType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirplaneTypeNotFound
	}

	return nil
}

type AirplaneDAO struct {
	db *gorm.DB
}

func NewAirplaneDAO(db *gorm.DB) *AirplaneDAO {
	return &AirplaneDAO{
		db: db,
	}
}

func (d *AirplaneDAO) Insert(ctx context.Context, airplane Airplane) (Airplane, error) {
	result := d.db.WithContext(ctx).Omit("Type").Create(&airplane)
	if result.Error != nil {
		return Airplane{}, translate(result.Error, ErrAirplaneNotFound, nil)
	}

	return airplane, nil
}

func (d *AirplaneDAO) Update(ctx context.Context, airplane Airplane) (Airplane, error) {
	result := d.db.WithContext(ctx).Model(&airplane).
		Select("Name", "TypeID", "Rows", "SeatsInRow").
		Updates(&airplane)
	if result.Error != nil {
		return Airplane{}, translate(result.Error, ErrAirplaneNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return Airplane{}, ErrAirplaneNotFound
	}

	return airplane, nil
}

func (d *AirplaneDAO) FindByID(ctx context.Context, id uint) (Airplane, error) {
	var airplane Airplane

	result := d.db.WithContext(ctx).Preload("Type").First(&airplane, id)
	if result.Error != nil {
		return Airplane{}, translate(result.Error, ErrAirplaneNotFound, nil)
	}

	return airplane, nil
}

func (d *AirplaneDAO) FindAll(ctx context.Context, filter AirplaneFilter, page Page) ([]Airplane, int64, error) {
	var total int64
	if err := filter.apply(d.db.WithContext(ctx).Model(&Airplane{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var airplanes []Airplane
	result := filter.apply(d.db.WithContext(ctx)).
		Preload("Type").
		Order("airplanes.name").
		Order("airplanes.id").
		Scopes(paginate(page)).
		Find(&airplanes)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return airplanes, total, nil
}

// Delete removes the airplane; its flights cascade.
func (d *AirplaneDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Airplane{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirplaneNotFound
	}

	return nil
}
