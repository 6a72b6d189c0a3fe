package catalog

import (
	"context"
	"errors"

	"filmorate/internal/domain"
	"filmorate/internal/repository"
)

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrMpaNotFound   = errors.New("mpa rating not found")
)

// Service exposes the read-only genre and MPA reference catalogs.
type Service struct {
	catalog *repository.CatalogRepository
}

func NewService(catalog *repository.CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	return s.catalog.Genres(ctx)
}

func (s *Service) GenreByID(ctx context.Context, id int64) (*domain.Genre, error) {
	g, err := s.catalog.GenreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGenreNotFound
	}
	return g, nil
}

func (s *Service) MpaRatings(ctx context.Context) ([]domain.MpaRating, error) {
	return s.catalog.MpaRatings(ctx)
}

func (s *Service) MpaByID(ctx context.Context, id int64) (*domain.MpaRating, error) {
	m, err := s.catalog.MpaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMpaNotFound
	}
	return m, nil
}
