package recap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/telegram"
)

// TextSender delivers recap messages to a Telegram chat.
type TextSender interface {
	Configured() bool
	SendText(chatID string, body string) error
}

// RecapService pushes a daily attendance summary to the admin chat. It runs
// from the cron scheduler, not from an HTTP route.
type RecapService struct {
	attendanceRepo attendance.Repository
	sender         TextSender
	adminChatID    string
}

func NewRecapService(attendanceRepo attendance.Repository, sender TextSender, adminChatID string) *RecapService {
	return &RecapService{
		attendanceRepo: attendanceRepo,
		sender:         sender,
		adminChatID:    adminChatID,
	}
}

// SendDailyRecap builds and delivers today's attendance summary. A missing
// bot token or admin chat id turns the job into a no-op.
func (s *RecapService) SendDailyRecap(ctx context.Context) error {
	if s.adminChatID == "" || !s.sender.Configured() {
		slog.Debug("Attendance recap skipped, telegram not configured")
		return nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	records, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to load today's attendance: %w", err)
	}

	return s.sender.SendText(s.adminChatID, buildRecap(today, records))
}

func buildRecap(date time.Time, records []attendance.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Rekap Absensi %s</b>\n", date.Format("02 Jan 2006"))

	if len(records) == 0 {
		b.WriteString("Belum ada yang absen hari ini.")
		return b.String()
	}

	late := 0
	for _, rec := range records {
		name := "?"
		if rec.UserName != nil {
			name = telegram.Escape(*rec.UserName)
		}

		mark := ""
		if rec.IsLate {
			mark = " (telat)"
			late++
		}
		fmt.Fprintf(&b, "• %s masuk %s%s\n", name, rec.ClockIn.Format("15:04"), mark)
	}

	fmt.Fprintf(&b, "\nHadir: %d, telat: %d", len(records), late)
	return b.String()
}
