package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	userRepo       user.Repository
	workdayStart   string // "HH:MM"
}

func NewAttendanceService(attendanceRepo attendance.Repository, userRepo user.Repository, workdayStart string) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		workdayStart:   workdayStart,
	}
}

func getClaimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)

	return userID, user.Role(roleStr), nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.RecordResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if _, err := s.attendanceRepo.GetOpenByUserDate(ctx, userID, today); err == nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.RecordResponse{}, err
	}

	isLate, err := s.isLate(now, today)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		UserID:  userID,
		UnitID:  u.UnitID,
		Date:    today,
		ClockIn: now,
		IsLate:  isLate,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.RecordResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	open, err := s.attendanceRepo.GetOpenByUserDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.RecordResponse{}, err
	}

	if err := s.attendanceRepo.CompleteClockOut(ctx, open.ID, now); err != nil {
		return attendance.RecordResponse{}, err
	}

	open.ClockOut = &now
	return toRecordResponse(open), nil
}

// MonthlyStats implements attendance.AttendanceService. Viewing another
// user's stats needs the view-all capability.
func (s *AttendanceServiceImpl) MonthlyStats(ctx context.Context, query attendance.MonthQuery) (attendance.StatsResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	if err := s.authorizeView(ctx, query.UserID); err != nil {
		return attendance.StatsResponse{}, err
	}

	records, err := s.attendanceRepo.ListByUserMonth(ctx, query.UserID, query.Month)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	stats := attendance.Aggregate(records, query.UserID, query.Month)

	return attendance.StatsResponse{
		UserID:       query.UserID,
		Month:        query.Month,
		TotalPresent: stats.TotalPresent,
		TotalLate:    stats.TotalLate,
	}, nil
}

// ListByUserMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByUserMonth(ctx context.Context, query attendance.MonthQuery) ([]attendance.RecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := s.authorizeView(ctx, query.UserID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByUserMonth(ctx, query.UserID, query.Month)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, toRecordResponse(rec))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) authorizeView(ctx context.Context, targetUserID string) error {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if targetUserID == userID {
		return nil
	}
	if !user.Can(role, user.ActionAttendanceViewAll) {
		return user.ErrActionNotPermitted
	}
	return nil
}

func (s *AttendanceServiceImpl) isLate(now, today time.Time) (bool, error) {
	cutoffClock, err := time.Parse("15:04", s.workdayStart)
	if err != nil {
		return false, fmt.Errorf("invalid workday start %q: %w", s.workdayStart, err)
	}
	cutoff := today.Add(time.Duration(cutoffClock.Hour())*time.Hour + time.Duration(cutoffClock.Minute())*time.Minute)
	return now.After(cutoff), nil
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:       rec.ID,
		UserID:   rec.UserID,
		UserName: rec.UserName,
		Date:     rec.Date.Format("2006-01-02"),
		ClockIn:  rec.ClockIn.Format(time.RFC3339),
		IsLate:   rec.IsLate,
	}
	if rec.ClockOut != nil {
		out := rec.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}
