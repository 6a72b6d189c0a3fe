package user

import (
	"context"
	"strings"

	"filmorate/internal/domain"
)

type Service struct {
	users       UserRepository
	friendships FriendshipRepository
}

func NewService(users UserRepository, friendships FriendshipRepository) *Service {
	return &Service{users: users, friendships: friendships}
}

// Create registers a new user. Ids are server-assigned, so a client-supplied
// id is rejected. A blank display name defaults to the login.
func (s *Service) Create(ctx context.Context, req UserRequest) (*domain.User, error) {
	if req.ID != nil {
		return nil, ErrIDForbidden
	}

	u := &domain.User{
		Email:    req.Email,
		Login:    req.Login,
		Birthday: req.Birthday,
	}
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if u.Name == "" {
		u.Name = u.Login
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update overwrites email and login and merges the optional fields over the
// stored record: name and birthday keep their previous values when absent.
func (s *Service) Update(ctx context.Context, req UserRequest) (*domain.User, error) {
	if req.ID == nil {
		return nil, ErrIDRequired
	}

	existing, err := s.users.FindByID(ctx, *req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Email = req.Email
	existing.Login = req.Login
	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if existing.Name == "" {
		existing.Name = existing.Login
	}
	if req.Birthday != nil {
		existing.Birthday = req.Birthday
	}

	if err := s.users.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *Service) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// AddFriend advances the friendship state machine for the ordered pair. A
// fresh request becomes pending with a received mirror; a reciprocal request
// confirms both sides; duplicates and already-confirmed pairs are rejected.
func (s *Service) AddFriend(ctx context.Context, userID, friendID int64) (*domain.User, error) {
	if userID == friendID {
		return nil, ErrSelfFriendship
	}
	u, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.FindByID(ctx, friendID); err != nil {
		return nil, err
	}

	edge, err := s.friendships.Get(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if edge == nil {
		if err := s.friendships.CreateRequest(ctx, userID, friendID); err != nil {
			return nil, err
		}
		return u, nil
	}

	switch edge.Status {
	case domain.FriendshipPending:
		return nil, ErrRequestAlreadySent
	case domain.FriendshipConfirmed:
		return nil, ErrAlreadyFriends
	case domain.FriendshipReceived:
		// the other user already invited us; reciprocating confirms both sides
		if err := s.friendships.Confirm(ctx, userID, friendID); err != nil {
			return nil, err
		}
		return u, nil
	}
	return nil, ErrRequestAlreadySent
}

// DeleteFriend breaks the relation from userID's side. A confirmed friendship
// becomes an open request from the other user again, which the remover may
// re-accept or drop; an unconfirmed one is removed outright.
func (s *Service) DeleteFriend(ctx context.Context, userID, friendID int64) (*domain.User, error) {
	u, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.FindByID(ctx, friendID); err != nil {
		return nil, err
	}

	edge, err := s.friendships.Get(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if edge == nil {
		return nil, ErrFriendshipNotFound
	}

	if edge.Status == domain.FriendshipConfirmed {
		err = s.friendships.Downgrade(ctx, userID, friendID)
	} else {
		err = s.friendships.DeletePair(ctx, userID, friendID)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Friends lists the user's confirmed friends.
func (s *Service) Friends(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.friendships.ConfirmedFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByIDs(ctx, ids)
}

// CommonFriends intersects the confirmed friend sets of both users.
func (s *Service) CommonFriends(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	if _, err := s.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.FindByID(ctx, otherID); err != nil {
		return nil, err
	}

	ids, err := s.friendships.ConfirmedFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	otherIDs, err := s.friendships.ConfirmedFriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}

	otherSet := make(map[int64]bool, len(otherIDs))
	for _, id := range otherIDs {
		otherSet[id] = true
	}
	common := make([]int64, 0, len(ids))
	for _, id := range ids {
		if otherSet[id] {
			common = append(common, id)
		}
	}
	return s.users.FindByIDs(ctx, common)
}

// Reset wipes all users and their relations; used by tests for isolation.
func (s *Service) Reset(ctx context.Context) error {
	return s.users.DeleteAll(ctx)
}
