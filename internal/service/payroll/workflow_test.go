package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== FAKES ==========

type fakePayrollRepo struct {
	configs  map[string]payroll.SalaryConfig
	records  []payroll.Record
	journals []finance.Transaction

	persistErr error
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{configs: make(map[string]payroll.SalaryConfig)}
}

func (f *fakePayrollRepo) GetSalaryConfig(ctx context.Context, userID string) (payroll.SalaryConfig, error) {
	cfg, ok := f.configs[userID]
	if !ok {
		return payroll.SalaryConfig{}, payroll.ErrSalaryConfigNotFound
	}
	return cfg, nil
}

func (f *fakePayrollRepo) UpsertSalaryConfig(ctx context.Context, cfg payroll.SalaryConfig) (payroll.SalaryConfig, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	f.configs[cfg.UserID] = cfg
	return cfg, nil
}

func (f *fakePayrollRepo) ListSalaryConfigs(ctx context.Context) ([]payroll.SalaryConfig, error) {
	configs := make([]payroll.SalaryConfig, 0, len(f.configs))
	for _, cfg := range f.configs {
		configs = append(configs, cfg)
	}
	return configs, nil
}

// CreateRecordWithJournal mirrors the real repository's all-or-nothing
// behavior: on failure neither the record nor the journal is kept.
func (f *fakePayrollRepo) CreateRecordWithJournal(ctx context.Context, rec payroll.Record, txn finance.Transaction) (payroll.Record, error) {
	if f.persistErr != nil {
		return payroll.Record{}, f.persistErr
	}
	rec.ID = uuid.NewString()
	txn.RefID = &rec.ID
	f.records = append(f.records, rec)
	f.journals = append(f.journals, txn)
	return rec, nil
}

func (f *fakePayrollRepo) GetRecordByID(ctx context.Context, id string) (payroll.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrRecordNotFound
}

func (f *fakePayrollRepo) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	var out []payroll.Record
	for _, rec := range f.records {
		if filter.UserID != nil && rec.UserID != *filter.UserID {
			continue
		}
		if filter.Month != nil && rec.Month != *filter.Month {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

type fakeUserRepo struct {
	users map[string]user.User
	order []string
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		f.users[u.ID] = u
		f.order = append(f.order, u.ID)
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	f.order = append(f.order, u.ID)
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]user.User, error) {
	users := make([]user.User, 0, len(f.order))
	for _, id := range f.order {
		if u := f.users[id]; u.IsActive {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) SetAvatarURL(ctx context.Context, id string, avatarURL string) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetOpenByUserDate(ctx context.Context, userID string, date time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) CompleteClockOut(ctx context.Context, id string, clockOut time.Time) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByUserMonth(ctx context.Context, userID, month string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Month() == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return nil, nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(u user.User, rec payroll.Record) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

type fakeSender struct {
	configured bool
	failFor    map[string]error

	sent []string // chat ids in delivery order
}

func (f *fakeSender) Configured() bool {
	return f.configured
}

func (f *fakeSender) SendDocument(chatID string, filename string, data []byte, caption string) error {
	if err, ok := f.failFor[chatID]; ok {
		return err
	}
	f.sent = append(f.sent, chatID)
	return nil
}

// ========== HELPERS ==========

func financeCtx(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "issuer-1",
		"role":    string(user.RoleFinance),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func chatID(s string) *string { return &s }

func payableUser(id, name string) user.User {
	return user.User{
		ID:             id,
		Name:           name,
		Email:          id + "@example.com",
		Role:           user.RoleEmployee,
		TelegramChatID: chatID("100" + id),
		IsActive:       true,
	}
}

func setup(users ...user.User) (*fakePayrollRepo, *fakeUserRepo, *fakeAttendanceRepo, *fakeSender, payroll.PayrollService) {
	payrollRepo := newFakePayrollRepo()
	userRepo := newFakeUserRepo(users...)
	attendanceRepo := &fakeAttendanceRepo{}
	sender := &fakeSender{configured: true}
	svc := NewPayrollService(payrollRepo, userRepo, attendanceRepo, &fakeRenderer{}, sender)
	return payrollRepo, userRepo, attendanceRepo, sender, svc
}

func defaultConfig(userID string) payroll.SalaryConfig {
	return payroll.SalaryConfig{
		ID:            uuid.NewString(),
		UserID:        userID,
		BasicSalary:   decimal.NewFromInt(5_000_000),
		Allowance:     decimal.NewFromInt(500_000),
		MealAllowance: decimal.NewFromInt(25_000),
		LateDeduction: decimal.NewFromInt(50_000),
	}
}

// ========== TESTS ==========

func TestIssueSlipPersistsRecordAndJournal(t *testing.T) {
	u := payableUser("u1", "Budi")
	payrollRepo, _, attendanceRepo, sender, svc := setup(u)
	payrollRepo.configs["u1"] = defaultConfig("u1")

	for day := 1; day <= 20; day++ {
		attendanceRepo.records = append(attendanceRepo.records, attendance.Record{
			UserID: "u1",
			Date:   time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			IsLate: day <= 3,
		})
	}

	resp, err := svc.IssueSlip(financeCtx(t), payroll.IssueSlipRequest{
		UserID: "u1",
		Month:  "2024-03",
	})
	require.NoError(t, err)

	assert.True(t, resp.Sent)
	assert.Equal(t, "5850000", resp.Record.NetSalary.String())

	require.Len(t, payrollRepo.records, 1)
	require.Len(t, payrollRepo.journals, 1)

	journal := payrollRepo.journals[0]
	assert.Equal(t, finance.TypeOut, journal.Type)
	assert.Equal(t, finance.CategorySalary, journal.Category)
	assert.True(t, journal.Amount.Equal(payrollRepo.records[0].NetSalary))
	require.NotNil(t, journal.RefID)
	assert.Equal(t, payrollRepo.records[0].ID, *journal.RefID)

	assert.Equal(t, []string{"100u1"}, sender.sent)
}

func TestIssueSlipNoSalaryConfig(t *testing.T) {
	payrollRepo, _, _, sender, svc := setup(payableUser("u1", "Budi"))

	_, err := svc.IssueSlip(financeCtx(t), payroll.IssueSlipRequest{UserID: "u1", Month: "2024-03"})

	assert.ErrorIs(t, err, payroll.ErrNotConfigured)
	assert.Empty(t, payrollRepo.records)
	assert.Empty(t, sender.sent)
}

func TestIssueSlipMissingChatID(t *testing.T) {
	u := payableUser("u1", "Budi")
	u.TelegramChatID = nil
	payrollRepo, _, _, _, svc := setup(u)
	payrollRepo.configs["u1"] = defaultConfig("u1")

	_, err := svc.IssueSlip(financeCtx(t), payroll.IssueSlipRequest{UserID: "u1", Month: "2024-03"})

	assert.ErrorIs(t, err, payroll.ErrNotificationTargetMissing)
	assert.Empty(t, payrollRepo.records)
	assert.Empty(t, payrollRepo.journals)
}

func TestIssueSlipBotNotConfigured(t *testing.T) {
	u := payableUser("u1", "Budi")
	payrollRepo, _, _, sender, svc := setup(u)
	payrollRepo.configs["u1"] = defaultConfig("u1")
	sender.configured = false

	_, err := svc.IssueSlip(financeCtx(t), payroll.IssueSlipRequest{UserID: "u1", Month: "2024-03"})

	assert.ErrorIs(t, err, payroll.ErrNotificationTargetMissing)
	assert.Empty(t, payrollRepo.records)
}

func TestIssueSlipDeliveryFailureNothingPersisted(t *testing.T) {
	u := payableUser("u1", "Budi")
	payrollRepo, _, _, sender, svc := setup(u)
	payrollRepo.configs["u1"] = defaultConfig("u1")

	cause := errors.New("telegram: chat not found")
	sender.failFor = map[string]error{"100u1": cause}

	_, err := svc.IssueSlip(financeCtx(t), payroll.IssueSlipRequest{UserID: "u1", Month: "2024-03"})

	assert.ErrorIs(t, err, payroll.ErrDeliveryFailed)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, payrollRepo.records)
	assert.Empty(t, payrollRepo.journals)
}

func TestIssueSlipPersistFailureLeavesNoPartialState(t *testing.T) {
	u := payableUser("u1", "Budi")
	payrollRepo, _, _, _, svc := setup(u)
	payrollRepo.configs["u1"] = defaultConfig("u1")
	payrollRepo.persistErr = fmt.Errorf("commit transaction: connection reset")

	_, err := svc.IssueSlip(financeCtx(t), payroll.IssueSlipRequest{UserID: "u1", Month: "2024-03"})

	require.Error(t, err)
	assert.Empty(t, payrollRepo.records)
	assert.Empty(t, payrollRepo.journals)
}

func TestIssueSlipTwiceCreatesTwoRecords(t *testing.T) {
	u := payableUser("u1", "Budi")
	payrollRepo, _, _, _, svc := setup(u)
	payrollRepo.configs["u1"] = defaultConfig("u1")

	req := payroll.IssueSlipRequest{UserID: "u1", Month: "2024-03"}
	_, err := svc.IssueSlip(financeCtx(t), req)
	require.NoError(t, err)
	_, err = svc.IssueSlip(financeCtx(t), req)
	require.NoError(t, err)

	// Re-issuing is not idempotent: two records, two journal rows
	assert.Len(t, payrollRepo.records, 2)
	assert.Len(t, payrollRepo.journals, 2)
	assert.NotEqual(t, payrollRepo.records[0].ID, payrollRepo.records[1].ID)
}

func TestIssueBulkSkipsOwnerAndCountsFailures(t *testing.T) {
	owner := payableUser("boss", "Owner")
	owner.Role = user.RoleOwner
	ok1 := payableUser("u1", "Budi")
	ok2 := payableUser("u2", "Sari")
	noChat := payableUser("u3", "Tono")
	noChat.TelegramChatID = nil

	payrollRepo, _, _, sender, svc := setup(owner, ok1, ok2, noChat)
	for _, id := range []string{"boss", "u1", "u2", "u3"} {
		payrollRepo.configs[id] = defaultConfig(id)
	}

	result, err := svc.IssueBulk(financeCtx(t), payroll.IssueBulkRequest{Month: "2024-03"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 1, result.FailedCount)

	// Only the two deliverable users got records; the owner and the failed
	// user have none
	require.Len(t, payrollRepo.records, 2)
	ids := []string{payrollRepo.records[0].UserID, payrollRepo.records[1].UserID}
	assert.ElementsMatch(t, []string{"u1", "u2"}, ids)
	assert.Equal(t, []string{"100u1", "100u2"}, sender.sent)
}

func TestIssueBulkContinuesAfterMidRunFailure(t *testing.T) {
	u1 := payableUser("u1", "Budi")
	u2 := payableUser("u2", "Sari")
	u3 := payableUser("u3", "Tono")

	payrollRepo, _, _, sender, svc := setup(u1, u2, u3)
	for _, id := range []string{"u1", "u2", "u3"} {
		payrollRepo.configs[id] = defaultConfig(id)
	}
	sender.failFor = map[string]error{"100u2": errors.New("telegram: bad gateway")}

	result, err := svc.IssueBulk(financeCtx(t), payroll.IssueBulkRequest{Month: "2024-03"})
	require.NoError(t, err)

	// u2 fails in the middle, u3 is still processed
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, []string{"100u1", "100u3"}, sender.sent)
}

func TestIssueBulkInvalidMonth(t *testing.T) {
	_, _, _, _, svc := setup()

	_, err := svc.IssueBulk(financeCtx(t), payroll.IssueBulkRequest{Month: "2024-13"})
	assert.Error(t, err)
}
