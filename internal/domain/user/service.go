package user

import (
	"context"
	"io"
)

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Me(ctx context.Context) (UserResponse, error)
	ListActive(ctx context.Context) ([]UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	UploadAvatar(ctx context.Context, file io.Reader, filename string, contentType string) (string, error)
}
