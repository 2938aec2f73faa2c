package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sdm-erp/erp-backend-go/internal/domain/unit"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/database"
)

type unitRepositoryImpl struct {
	db *database.DB
}

func NewUnitRepository(db *database.DB) unit.Repository {
	return &unitRepositoryImpl{db: db}
}

func scanUnit(row pgx.Row) (unit.Unit, error) {
	var u unit.Unit
	err := row.Scan(&u.ID, &u.Name, &u.Features, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create implements unit.Repository.
func (r *unitRepositoryImpl) Create(ctx context.Context, u unit.Unit) (unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO units (name, features)
		VALUES ($1, $2)
		RETURNING id, name, features, created_at, updated_at
	`

	created, err := scanUnit(q.QueryRow(ctx, query, u.Name, u.Features))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return unit.Unit{}, unit.ErrUnitNameExists
		}
		return unit.Unit{}, fmt.Errorf("failed to create unit: %w", err)
	}

	return created, nil
}

// GetByID implements unit.Repository.
func (r *unitRepositoryImpl) GetByID(ctx context.Context, id string) (unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, features, created_at, updated_at FROM units WHERE id = $1`

	u, err := scanUnit(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.Unit{}, unit.ErrUnitNotFound
		}
		return unit.Unit{}, fmt.Errorf("failed to get unit: %w", err)
	}

	return u, nil
}

// List implements unit.Repository.
func (r *unitRepositoryImpl) List(ctx context.Context) ([]unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, features, created_at, updated_at FROM units ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var units []unit.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}

// Update implements unit.Repository.
func (r *unitRepositoryImpl) Update(ctx context.Context, u unit.Unit) (unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE units
		SET name = $1, features = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, features, created_at, updated_at
	`

	updated, err := scanUnit(q.QueryRow(ctx, query, u.Name, u.Features, u.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.Unit{}, unit.ErrUnitNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return unit.Unit{}, unit.ErrUnitNameExists
		}
		return unit.Unit{}, fmt.Errorf("failed to update unit: %w", err)
	}

	return updated, nil
}
