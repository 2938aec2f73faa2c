package recap

import (
	"context"
	"testing"
	"time"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) GetOpenByUserDate(ctx context.Context, userID string, date time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) CompleteClockOut(ctx context.Context, id string, clockOut time.Time) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByUserMonth(ctx context.Context, userID, month string) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return f.records, nil
}

type fakeSender struct {
	configured bool
	messages   []string
}

func (f *fakeSender) Configured() bool { return f.configured }

func (f *fakeSender) SendText(chatID string, body string) error {
	f.messages = append(f.messages, body)
	return nil
}

func name(s string) *string { return &s }

func TestSendDailyRecap(t *testing.T) {
	clockIn := time.Date(2024, 3, 15, 8, 1, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{records: []attendance.Record{
		{UserID: "u1", UserName: name("Budi"), ClockIn: clockIn},
		{UserID: "u2", UserName: name("Sari"), ClockIn: clockIn.Add(90 * time.Minute), IsLate: true},
	}}
	sender := &fakeSender{configured: true}

	svc := NewRecapService(repo, sender, "42")
	require.NoError(t, svc.SendDailyRecap(context.Background()))

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Contains(t, msg, "Budi")
	assert.Contains(t, msg, "Sari")
	assert.Contains(t, msg, "(telat)")
	assert.Contains(t, msg, "Hadir: 2, telat: 1")
}

func TestSendDailyRecapSkipsWhenUnconfigured(t *testing.T) {
	sender := &fakeSender{configured: false}
	svc := NewRecapService(&fakeAttendanceRepo{}, sender, "42")

	require.NoError(t, svc.SendDailyRecap(context.Background()))
	assert.Empty(t, sender.messages)

	// Same when the admin chat id is missing
	sender.configured = true
	svc = NewRecapService(&fakeAttendanceRepo{}, sender, "")
	require.NoError(t, svc.SendDailyRecap(context.Background()))
	assert.Empty(t, sender.messages)
}

func TestBuildRecapEmptyDay(t *testing.T) {
	msg := buildRecap(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), nil)
	assert.Contains(t, msg, "Belum ada yang absen")
}
