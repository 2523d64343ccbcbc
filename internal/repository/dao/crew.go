package dao

import (
	"context"

	"gorm.io/gorm"
)

type Crew struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:60;not null"`
	LastName  string `gorm:"size:60;not null;index"`
}

func (Crew) TableName() string {
	return "crew"
}

type CrewDAO struct {
	db *gorm.DB
}

func NewCrewDAO(db *gorm.DB) *CrewDAO {
	return &CrewDAO{
		db: db,
	}
}

func (d *CrewDAO) Insert(ctx context.Context, crew Crew) (Crew, error) {
	result := d.db.WithContext(ctx).Create(&crew)
	if result.Error != nil {
		return Crew{}, result.Error
	}

	return crew, nil
}

func (d *CrewDAO) Update(ctx context.Context, crew Crew) (Crew, error) {
	result := d.db.WithContext(ctx).Model(&crew).Select("FirstName", "LastName").Updates(&crew)
	if result.Error != nil {
		return Crew{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Crew{}, ErrCrewNotFound
	}

	return crew, nil
}

func (d *CrewDAO) FindByID(ctx context.Context, id uint) (Crew, error) {
	var crew Crew

	result := d.db.WithContext(ctx).First(&crew, id)
	if result.Error != nil {
		return Crew{}, translate(result.Error, ErrCrewNotFound, nil)
	}

	return crew, nil
}

// FindByIDs returns the crew members that exist among ids.
func (d *CrewDAO) FindByIDs(ctx context.Context, ids []uint) ([]Crew, error) {
	var crew []Crew
	if len(ids) == 0 {
		return crew, nil
	}

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Order("last_name").Find(&crew)
	if result.Error != nil {
		return nil, result.Error
	}

	return crew, nil
}

func (d *CrewDAO) FindAll(ctx context.Context, page Page) ([]Crew, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Crew{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var crew []Crew
	result := d.db.WithContext(ctx).Order("last_name").Order("id").Scopes(paginate(page)).Find(&crew)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return crew, total, nil
}

// Delete removes the crew member and its flight assignments.
func (d *CrewDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("crew_id = ?", id).Delete(&FlightCrew{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Crew{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCrewNotFound
		}

		return nil
	})
}
