package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/database"
)

type financeRepositoryImpl struct {
	db *database.DB
}

func NewFinanceRepository(db *database.DB) finance.Repository {
	return &financeRepositoryImpl{db: db}
}

const transactionColumns = `id, unit_id, date, type, category, amount, description, ref_id, created_by, created_at`

func scanTransaction(row pgx.Row) (finance.Transaction, error) {
	var t finance.Transaction
	err := row.Scan(
		&t.ID, &t.UnitID, &t.Date, &t.Type, &t.Category, &t.Amount,
		&t.Description, &t.RefID, &t.CreatedBy, &t.CreatedAt,
	)
	return t, err
}

// Create implements finance.Repository.
func (r *financeRepositoryImpl) Create(ctx context.Context, txn finance.Transaction) (finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (unit_id, date, type, category, amount, description, ref_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + transactionColumns

	created, err := scanTransaction(q.QueryRow(ctx, query,
		txn.UnitID, txn.Date, txn.Type, txn.Category, txn.Amount,
		txn.Description, txn.RefID, txn.CreatedBy,
	))
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return created, nil
}

// CreateBatch implements finance.Repository. All rows are inserted within one
// database transaction; none survive when any insert fails.
func (r *financeRepositoryImpl) CreateBatch(ctx context.Context, txns []finance.Transaction) ([]finance.Transaction, error) {
	created := make([]finance.Transaction, 0, len(txns))

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		for _, txn := range txns {
			c, err := r.Create(txCtx, txn)
			if err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID implements finance.Repository.
func (r *financeRepositoryImpl) GetByID(ctx context.Context, id string) (finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return finance.Transaction{}, finance.ErrTransactionNotFound
		}
		return finance.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	return t, nil
}

// List implements finance.Repository.
func (r *financeRepositoryImpl) List(ctx context.Context, filter finance.Filter) ([]finance.Transaction, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.UnitID != nil {
		where += fmt.Sprintf(" AND unit_id = $%d", argPos)
		args = append(args, *filter.UnitID)
		argPos++
	}
	if filter.Type != nil {
		where += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, *filter.Type)
		argPos++
	}
	if filter.Category != nil {
		where += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, *filter.Category)
		argPos++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, *filter.DateTo)
		argPos++
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transactions` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions` + where +
		fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []finance.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		txns = append(txns, t)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return txns, totalCount, nil
}
