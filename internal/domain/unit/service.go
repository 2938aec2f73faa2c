package unit

import "context"

type UnitService interface {
	Create(ctx context.Context, req UpsertUnitRequest) (UnitResponse, error)
	GetByID(ctx context.Context, id string) (UnitResponse, error)
	List(ctx context.Context) ([]UnitResponse, error)
	Update(ctx context.Context, req UpsertUnitRequest) (UnitResponse, error)
}
