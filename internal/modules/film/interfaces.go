package film

import (
	"context"

	"filmorate/internal/domain"
)

type FilmRepository interface {
	Create(ctx context.Context, f *domain.Film) error
	Update(ctx context.Context, f *domain.Film) error
	FindByID(ctx context.Context, id int64) (*domain.Film, error)
	FindAll(ctx context.Context) ([]domain.Film, error)
	FindPopular(ctx context.Context, limit int) ([]domain.Film, error)
	DeleteAll(ctx context.Context) error
}

// UserGate checks user existence for like operations.
type UserGate interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// CatalogGate resolves genre and MPA references against the fixed catalogs.
type CatalogGate interface {
	GenresByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error)
	MpaByID(ctx context.Context, id int64) (*domain.MpaRating, error)
}
