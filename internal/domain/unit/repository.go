package unit

import "context"

type Repository interface {
	Create(ctx context.Context, u Unit) (Unit, error)
	GetByID(ctx context.Context, id string) (Unit, error)
	List(ctx context.Context) ([]Unit, error)
	Update(ctx context.Context, u Unit) (Unit, error)
}
