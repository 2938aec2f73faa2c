package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Top-level owner - full access, excluded from payroll runs
	RoleAdmin    Role = "admin"    // Manages units, users and projects
	RoleFinance  Role = "finance"  // Manages salary configs, payroll and bookkeeping
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID             string
	UnitID         *string
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	TelegramChatID *string
	AvatarURL      *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	UnitName *string
}

// IsOwner checks if user is the top-level owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
