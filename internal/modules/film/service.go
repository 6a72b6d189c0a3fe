package film

import (
	"context"

	"filmorate/internal/domain"
)

type Service struct {
	films   FilmRepository
	users   UserGate
	catalog CatalogGate
}

func NewService(films FilmRepository, users UserGate, catalog CatalogGate) *Service {
	return &Service{films: films, users: users, catalog: catalog}
}

// Create stores a new film. Genre and MPA references are resolved against the
// catalogs; unknown references are rejected. The like set starts empty.
func (s *Service) Create(ctx context.Context, req FilmRequest) (*domain.Film, error) {
	if req.ID != nil {
		return nil, ErrIDForbidden
	}

	genres, err := s.resolveGenres(ctx, req)
	if err != nil {
		return nil, err
	}
	mpaID, mpa, err := s.resolveMpa(ctx, req.Mpa)
	if err != nil {
		return nil, err
	}

	f := &domain.Film{
		Name:         req.Name,
		Genres:       genres,
		MpaID:        mpaID,
		Mpa:          mpa,
		LikedUserIDs: []int64{},
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.ReleaseDate != nil {
		f.ReleaseDate = req.ReleaseDate
	}
	if req.Duration != nil {
		f.Duration = *req.Duration
	}

	if err := s.films.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Update merges the request over the stored film: the name is always
// overwritten, every other field only when present. Genre references are
// re-validated like on create.
func (s *Service) Update(ctx context.Context, req FilmRequest) (*domain.Film, error) {
	if req.ID == nil {
		return nil, ErrIDRequired
	}

	existing, err := s.films.FindByID(ctx, *req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = req.Name
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.ReleaseDate != nil {
		existing.ReleaseDate = req.ReleaseDate
	}
	if req.Duration != nil {
		existing.Duration = *req.Duration
	}
	if req.Genres != nil {
		genres, err := s.resolveGenres(ctx, req)
		if err != nil {
			return nil, err
		}
		existing.Genres = genres
	}
	if req.Mpa != nil {
		mpaID, mpa, err := s.resolveMpa(ctx, req.Mpa)
		if err != nil {
			return nil, err
		}
		existing.MpaID = mpaID
		existing.Mpa = mpa
	}

	if err := s.films.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Film, error) {
	f, err := s.films.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	return f, nil
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Film, error) {
	return s.films.FindAll(ctx)
}

// AddLike records userID's like and returns the film's like count. Liking a
// film twice is a no-op that still reports the current count.
func (s *Service) AddLike(ctx context.Context, filmID, userID int64) (int, error) {
	f, err := s.FindByID(ctx, filmID)
	if err != nil {
		return 0, err
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return 0, err
	}

	if f.LikedBy(userID) {
		return f.LikesCount, nil
	}
	f.LikedUserIDs = append(f.LikedUserIDs, userID)
	f.LikesCount = len(f.LikedUserIDs)
	if err := s.films.Update(ctx, f); err != nil {
		return 0, err
	}
	return f.LikesCount, nil
}

// RemoveLike drops userID's like and returns the film's like count; a no-op
// when the user had not liked the film.
func (s *Service) RemoveLike(ctx context.Context, filmID, userID int64) (int, error) {
	f, err := s.FindByID(ctx, filmID)
	if err != nil {
		return 0, err
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return 0, err
	}

	if !f.LikedBy(userID) {
		return f.LikesCount, nil
	}
	kept := make([]int64, 0, len(f.LikedUserIDs)-1)
	for _, id := range f.LikedUserIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	f.LikedUserIDs = kept
	f.LikesCount = len(f.LikedUserIDs)
	if err := s.films.Update(ctx, f); err != nil {
		return 0, err
	}
	return f.LikesCount, nil
}

// Popular returns at most count films ordered by like count descending.
func (s *Service) Popular(ctx context.Context, count int) ([]domain.Film, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	return s.films.FindPopular(ctx, count)
}

// Reset wipes all films; used by tests for isolation.
func (s *Service) Reset(ctx context.Context) error {
	return s.films.DeleteAll(ctx)
}

func (s *Service) resolveGenres(ctx context.Context, req FilmRequest) ([]domain.Genre, error) {
	ids := req.GenreIDs()
	genres, err := s.catalog.GenresByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		return nil, ErrGenreNotFound
	}
	return genres, nil
}

func (s *Service) resolveMpa(ctx context.Context, ref *RatingRef) (*int64, *domain.MpaRating, error) {
	if ref == nil {
		return nil, nil, nil
	}
	mpa, err := s.catalog.MpaByID(ctx, ref.ID)
	if err != nil {
		return nil, nil, err
	}
	if mpa == nil {
		return nil, nil, ErrMpaNotFound
	}
	return &mpa.ID, mpa, nil
}

func (s *Service) checkUser(ctx context.Context, userID int64) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	return nil
}
