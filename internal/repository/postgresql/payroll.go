package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db         *database.DB
	financeRep finance.Repository
}

func NewPayrollRepository(db *database.DB, financeRep finance.Repository) payroll.Repository {
	return &payrollRepositoryImpl{db: db, financeRep: financeRep}
}

const salaryConfigColumns = `id, user_id, basic_salary, allowance, meal_allowance, late_deduction, created_at, updated_at`

func scanSalaryConfig(row pgx.Row) (payroll.SalaryConfig, error) {
	var cfg payroll.SalaryConfig
	err := row.Scan(
		&cfg.ID, &cfg.UserID, &cfg.BasicSalary, &cfg.Allowance,
		&cfg.MealAllowance, &cfg.LateDeduction, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}

// GetSalaryConfig implements payroll.Repository.
func (r *payrollRepositoryImpl) GetSalaryConfig(ctx context.Context, userID string) (payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryConfigColumns + ` FROM salary_configs WHERE user_id = $1`

	cfg, err := scanSalaryConfig(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryConfig{}, payroll.ErrSalaryConfigNotFound
		}
		return payroll.SalaryConfig{}, fmt.Errorf("failed to get salary config: %w", err)
	}

	return cfg, nil
}

// UpsertSalaryConfig implements payroll.Repository. One config per user;
// a second upsert overwrites the amounts in place.
func (r *payrollRepositoryImpl) UpsertSalaryConfig(ctx context.Context, cfg payroll.SalaryConfig) (payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_configs (user_id, basic_salary, allowance, meal_allowance, late_deduction)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			allowance = EXCLUDED.allowance,
			meal_allowance = EXCLUDED.meal_allowance,
			late_deduction = EXCLUDED.late_deduction,
			updated_at = NOW()
		RETURNING ` + salaryConfigColumns

	saved, err := scanSalaryConfig(q.QueryRow(ctx, query,
		cfg.UserID, cfg.BasicSalary, cfg.Allowance, cfg.MealAllowance, cfg.LateDeduction,
	))
	if err != nil {
		return payroll.SalaryConfig{}, fmt.Errorf("failed to upsert salary config: %w", err)
	}

	return saved, nil
}

// ListSalaryConfigs implements payroll.Repository.
func (r *payrollRepositoryImpl) ListSalaryConfigs(ctx context.Context) ([]payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryConfigColumns + ` FROM salary_configs ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary configs: %w", err)
	}
	defer rows.Close()

	var configs []payroll.SalaryConfig
	for rows.Next() {
		cfg, err := scanSalaryConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return configs, nil
}

const recordColumns = `id, user_id, month, basic_salary, allowance, total_meal_allowance, bonus, deductions, net_salary, is_sent, processed_at, metadata`

func scanRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Month, &rec.BasicSalary, &rec.Allowance,
		&rec.TotalMealAllowance, &rec.Bonus, &rec.Deductions, &rec.NetSalary,
		&rec.IsSent, &rec.ProcessedAt, &rec.Metadata,
	)
	return rec, err
}

// CreateRecordWithJournal implements payroll.Repository. The record and its
// auto-journal ledger row are written in one database transaction; a failure
// on either insert rolls back both. The journal's ref_id is pointed at the
// freshly inserted record.
func (r *payrollRepositoryImpl) CreateRecordWithJournal(ctx context.Context, rec payroll.Record, txn finance.Transaction) (payroll.Record, error) {
	var created payroll.Record

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO payroll_records (user_id, month, basic_salary, allowance, total_meal_allowance,
				bonus, deductions, net_salary, is_sent, processed_at, metadata)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING ` + recordColumns

		var err error
		created, err = scanRecord(q.QueryRow(txCtx, query,
			rec.UserID, rec.Month, rec.BasicSalary, rec.Allowance, rec.TotalMealAllowance,
			rec.Bonus, rec.Deductions, rec.NetSalary, rec.IsSent, rec.ProcessedAt, rec.Metadata,
		))
		if err != nil {
			return fmt.Errorf("failed to create payroll record: %w", err)
		}

		txn.RefID = &created.ID
		if _, err := r.financeRep.Create(txCtx, txn); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return payroll.Record{}, err
	}

	return created, nil
}

// GetRecordByID implements payroll.Repository.
func (r *payrollRepositoryImpl) GetRecordByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM payroll_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// ListRecords implements payroll.Repository.
func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil {
		where += fmt.Sprintf(" AND p.user_id = $%d", argPos)
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND p.month = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payroll_records p` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := `
		SELECT p.id, p.user_id, p.month, p.basic_salary, p.allowance, p.total_meal_allowance,
			p.bonus, p.deductions, p.net_salary, p.is_sent, p.processed_at, p.metadata, u.name
		FROM payroll_records p
		JOIN users u ON u.id = p.user_id` + where +
		fmt.Sprintf(" ORDER BY p.processed_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Month, &rec.BasicSalary, &rec.Allowance,
			&rec.TotalMealAllowance, &rec.Bonus, &rec.Deductions, &rec.NetSalary,
			&rec.IsSent, &rec.ProcessedAt, &rec.Metadata, &rec.UserName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}
