package unit

import (
	"context"

	"github.com/sdm-erp/erp-backend-go/internal/domain/unit"
)

type UnitServiceImpl struct {
	unitRepo unit.Repository
}

func NewUnitService(unitRepo unit.Repository) unit.UnitService {
	return &UnitServiceImpl{unitRepo: unitRepo}
}

// Create implements unit.UnitService.
func (s *UnitServiceImpl) Create(ctx context.Context, req unit.UpsertUnitRequest) (unit.UnitResponse, error) {
	if err := req.Validate(); err != nil {
		return unit.UnitResponse{}, err
	}

	created, err := s.unitRepo.Create(ctx, unit.Unit{
		Name:     req.Name,
		Features: req.Features,
	})
	if err != nil {
		return unit.UnitResponse{}, err
	}

	return unit.ToResponse(created), nil
}

// GetByID implements unit.UnitService.
func (s *UnitServiceImpl) GetByID(ctx context.Context, id string) (unit.UnitResponse, error) {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return unit.UnitResponse{}, err
	}
	return unit.ToResponse(u), nil
}

// List implements unit.UnitService.
func (s *UnitServiceImpl) List(ctx context.Context) ([]unit.UnitResponse, error) {
	units, err := s.unitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]unit.UnitResponse, 0, len(units))
	for _, u := range units {
		result = append(result, unit.ToResponse(u))
	}
	return result, nil
}

// Update implements unit.UnitService.
func (s *UnitServiceImpl) Update(ctx context.Context, req unit.UpsertUnitRequest) (unit.UnitResponse, error) {
	if err := req.Validate(); err != nil {
		return unit.UnitResponse{}, err
	}

	updated, err := s.unitRepo.Update(ctx, unit.Unit{
		ID:       req.ID,
		Name:     req.Name,
		Features: req.Features,
	})
	if err != nil {
		return unit.UnitResponse{}, err
	}

	return unit.ToResponse(updated), nil
}
