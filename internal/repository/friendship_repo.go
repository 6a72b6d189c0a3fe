package repository

import (
	"context"
	"errors"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// Get returns the directed edge userID -> friendID, or (nil, nil) when no
// such edge exists.
func (r *FriendshipRepository) Get(ctx context.Context, userID, friendID int64) (*domain.Friendship, error) {
	var f domain.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// CreateRequest records a new friend request: a pending edge from the
// requester and its received mirror on the addressee's side, written
// atomically.
func (r *FriendshipRepository) CreateRequest(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&domain.Friendship{
			UserID:   userID,
			FriendID: friendID,
			Status:   domain.FriendshipPending,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.Friendship{
			UserID:   friendID,
			FriendID: userID,
			Status:   domain.FriendshipReceived,
		}).Error
	})
}

// Confirm flips both directed edges between the two users to confirmed.
func (r *FriendshipRepository) Confirm(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Update("status", domain.FriendshipConfirmed).Error
}

// DeletePair removes both directed edges between the two users.
func (r *FriendshipRepository) DeletePair(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&domain.Friendship{}).Error
}

// Downgrade breaks a confirmed friendship from userID's side: the pair is
// rewritten as an open request from the other user, so userID keeps a
// received edge and friendID a pending one. Every pending edge keeps its
// received mirror, which is what CreateRequest and Confirm rely on.
func (r *FriendshipRepository) Downgrade(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Friendship{}).
			Where("user_id = ? AND friend_id = ?", userID, friendID).
			Update("status", domain.FriendshipReceived).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Friendship{}).
			Where("user_id = ? AND friend_id = ?", friendID, userID).
			Update("status", domain.FriendshipPending).Error
	})
}

// ConfirmedFriendIDs lists the ids of userID's confirmed friends.
func (r *FriendshipRepository) ConfirmedFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Friendship{}).
		Where("user_id = ? AND status = ?", userID, domain.FriendshipConfirmed).
		Order("friend_id").
		Pluck("friend_id", &ids).Error
	return ids, err
}
