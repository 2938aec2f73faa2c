package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
)

type FinanceServiceImpl struct {
	financeRepo finance.Repository
}

func NewFinanceService(financeRepo finance.Repository) finance.FinanceService {
	return &FinanceServiceImpl{financeRepo: financeRepo}
}

func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// parseDate resolves the optional request date, defaulting to today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.Parse("2006-01-02", s)
}

// Create implements finance.FinanceService.
func (s *FinanceServiceImpl) Create(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.TransactionResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return finance.TransactionResponse{}, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return finance.TransactionResponse{}, err
	}

	created, err := s.financeRepo.Create(ctx, finance.Transaction{
		UnitID:      req.UnitID,
		Date:        date,
		Type:        finance.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedBy:   &userID,
	})
	if err != nil {
		return finance.TransactionResponse{}, err
	}

	return finance.ToResponse(created), nil
}

// CreateSplit implements finance.FinanceService. The batch is rejected before
// any insert when the entries do not sum to the stated total; the repository
// then writes all rows in one transaction.
func (s *FinanceServiceImpl) CreateSplit(ctx context.Context, req finance.CreateSplitRequest) ([]finance.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Balanced() {
		return nil, finance.ErrUnbalancedSplit
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	txns := make([]finance.Transaction, 0, len(req.Entries))
	for _, entry := range req.Entries {
		txns = append(txns, finance.Transaction{
			UnitID:      req.UnitID,
			Date:        date,
			Type:        finance.TransactionType(req.Type),
			Category:    entry.Category,
			Amount:      entry.Amount,
			Description: entry.Description,
			CreatedBy:   &userID,
		})
	}

	created, err := s.financeRepo.CreateBatch(ctx, txns)
	if err != nil {
		return nil, err
	}

	result := make([]finance.TransactionResponse, 0, len(created))
	for _, t := range created {
		result = append(result, finance.ToResponse(t))
	}
	return result, nil
}

// GetByID implements finance.FinanceService.
func (s *FinanceServiceImpl) GetByID(ctx context.Context, id string) (finance.TransactionResponse, error) {
	t, err := s.financeRepo.GetByID(ctx, id)
	if err != nil {
		return finance.TransactionResponse{}, err
	}
	return finance.ToResponse(t), nil
}

// List implements finance.FinanceService.
func (s *FinanceServiceImpl) List(ctx context.Context, filter finance.Filter) (finance.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	txns, totalCount, err := s.financeRepo.List(ctx, filter)
	if err != nil {
		return finance.ListResponse{}, err
	}

	data := make([]finance.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		data = append(data, finance.ToResponse(t))
	}

	return finance.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}
