package user

import "github.com/sdm-erp/erp-backend-go/internal/pkg/validator"

type CreateUserRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Role           string  `json:"role"`
	UnitID         *string `json:"unit_id,omitempty"`
	TelegramChatID *string `json:"telegram_chat_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	switch Role(r.Role) {
	case RoleOwner, RoleAdmin, RoleFinance, RoleEmployee:
	default:
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be owner, admin, finance or employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID             string
	Name           *string `json:"name,omitempty"`
	Role           *string `json:"role,omitempty"`
	UnitID         *string `json:"unit_id,omitempty"`
	TelegramChatID *string `json:"telegram_chat_id,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	UnitID         *string `json:"unit_id,omitempty"`
	UnitName       *string `json:"unit_name,omitempty"`
	TelegramChatID *string `json:"telegram_chat_id,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	IsActive       bool    `json:"is_active"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		UnitID:         u.UnitID,
		UnitName:       u.UnitName,
		TelegramChatID: u.TelegramChatID,
		AvatarURL:      u.AvatarURL,
		IsActive:       u.IsActive,
	}
}
