package unit

import (
	"context"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	UnitRepository interface {
		CreateUnit(ctx context.Context, unit *entities.Unit) error
		GetUnitByID(ctx context.Context, id int64) (*entities.Unit, error)
		GetUnitBySymbol(ctx context.Context, symbol string) (*entities.Unit, error)
		GetUnits(ctx context.Context) ([]*entities.Unit, error)
	}

	unitRepository struct {
		db *gorm.DB
	}
)

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) CreateUnit(ctx context.Context, unit *entities.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *unitRepository) GetUnitByID(ctx context.Context, id int64) (*entities.Unit, error) {
	var unit entities.Unit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetUnitBySymbol(ctx context.Context, symbol string) (*entities.Unit, error) {
	var unit entities.Unit
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	var units []*entities.Unit
	if err := r.db.WithContext(ctx).Order("id asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}
