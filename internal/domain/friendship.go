package domain

import "time"

type FriendshipStatus string

const (
	// FriendshipPending is an outgoing request that has not been reciprocated.
	FriendshipPending FriendshipStatus = "pending"
	// FriendshipReceived mirrors a pending request on the addressee's side.
	FriendshipReceived FriendshipStatus = "received"
	// FriendshipConfirmed means both users reciprocated; confirmed edges are
	// always symmetric.
	FriendshipConfirmed FriendshipStatus = "confirmed"
)

// Friendship is one directed edge of the friendship state machine, keyed by
// the ordered (user_id, friend_id) pair.
type Friendship struct {
	UserID    int64            `gorm:"column:user_id;primaryKey"`
	FriendID  int64            `gorm:"column:friend_id;primaryKey"`
	Status    FriendshipStatus `gorm:"column:status;size:16"`
	CreatedAt time.Time
}

func (Friendship) TableName() string { return "friendships" }
