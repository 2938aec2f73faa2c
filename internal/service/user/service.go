package user

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.Repository
	storage  storage.FileStorage
}

func NewUserService(userRepo user.Repository, fileStorage storage.FileStorage) user.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		storage:  fileStorage,
	}
}

// Helper to get user_id and role from JWT context
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

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		UnitID:         req.UnitID,
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		PasswordHash:   string(hash),
		Role:           user.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
		IsActive:       true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// Me implements user.UserService.
func (s *UserServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.GetByID(ctx, userID)
}

// ListActive implements user.UserService.
func (s *UserServiceImpl) ListActive(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, user.ToResponse(u))
	}
	return result, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		switch user.Role(*req.Role) {
		case user.RoleOwner, user.RoleAdmin, user.RoleFinance, user.RoleEmployee:
			u.Role = user.Role(*req.Role)
		default:
			return user.UserResponse{}, user.ErrActionNotPermitted
		}
	}
	if req.UnitID != nil {
		u.UnitID = req.UnitID
	}
	if req.TelegramChatID != nil {
		u.TelegramChatID = req.TelegramChatID
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	updated, err := s.userRepo.Update(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// UploadAvatar implements user.UserService. The file lands under the
// authenticated user's own avatar path.
func (s *UserServiceImpl) UploadAvatar(ctx context.Context, file io.Reader, filename string, contentType string) (string, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return "", fmt.Errorf("unsupported avatar format: %s", ext)
	}

	// Unique name so a stale browser cache never serves the old avatar.
	path := fmt.Sprintf("avatars/%s-%s%s", userID, uuid.New().String(), ext)
	stored, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored, 24*time.Hour)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}

	return url, nil
}
