package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListActive(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	SetAvatarURL(ctx context.Context, id string, avatarURL string) error
}
