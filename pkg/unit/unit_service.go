package unit

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	UnitService interface {
		CreateUnit(ctx context.Context, req domain.CreateUnitRequest) (domain.UnitResponse, error)
		GetUnitByID(ctx context.Context, id int64) (domain.UnitResponse, error)
		GetUnits(ctx context.Context) ([]domain.UnitResponse, error)
	}

	unitService struct {
		unitRepository UnitRepository
	}
)

func NewUnitService(unitRepository UnitRepository) UnitService {
	return &unitService{unitRepository: unitRepository}
}

func (s *unitService) CreateUnit(ctx context.Context, req domain.CreateUnitRequest) (domain.UnitResponse, error) {
	if _, err := s.unitRepository.GetUnitBySymbol(ctx, req.Symbol); err == nil {
		return domain.UnitResponse{}, domain.ErrUnitAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UnitResponse{}, err
	}

	unit := &entities.Unit{Symbol: req.Symbol}
	if err := s.unitRepository.CreateUnit(ctx, unit); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UnitResponse{}, domain.ErrUnitAlreadyExists
		}
		return domain.UnitResponse{}, err
	}

	return domain.UnitResponse{ID: unit.ID, Symbol: unit.Symbol}, nil
}

func (s *unitService) GetUnitByID(ctx context.Context, id int64) (domain.UnitResponse, error) {
	unit, err := s.unitRepository.GetUnitByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UnitResponse{}, domain.ErrUnitNotFound
		}
		return domain.UnitResponse{}, err
	}
	return domain.UnitResponse{ID: unit.ID, Symbol: unit.Symbol}, nil
}

func (s *unitService) GetUnits(ctx context.Context) ([]domain.UnitResponse, error) {
	units, err := s.unitRepository.GetUnits(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UnitResponse, 0, len(units))
	for _, unit := range units {
		res = append(res, domain.UnitResponse{ID: unit.ID, Symbol: unit.Symbol})
	}
	return res, nil
}
