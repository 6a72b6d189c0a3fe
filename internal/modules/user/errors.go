package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrIDForbidden        = errors.New("id must not be set before registration")
	ErrIDRequired         = errors.New("user id is required")
	ErrSelfFriendship     = errors.New("cannot send a friend request to yourself")
	ErrRequestAlreadySent = errors.New("friend request already sent")
	ErrAlreadyFriends     = errors.New("users are already friends")
	ErrFriendshipNotFound = errors.New("friendship does not exist")
)
