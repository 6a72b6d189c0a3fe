package user

import (
	"context"

	"filmorate/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	DeleteAll(ctx context.Context) error
}

type FriendshipRepository interface {
	Get(ctx context.Context, userID, friendID int64) (*domain.Friendship, error)
	CreateRequest(ctx context.Context, userID, friendID int64) error
	Confirm(ctx context.Context, userID, friendID int64) error
	DeletePair(ctx context.Context, userID, friendID int64) error
	Downgrade(ctx context.Context, userID, friendID int64) error
	ConfirmedFriendIDs(ctx context.Context, userID int64) ([]int64, error)
}
