package repository

import (
	"context"
	"errors"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// CatalogRepository reads the fixed genre and MPA reference tables.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Genres(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	err := r.db.WithContext(ctx).Order("id").Find(&genres).Error
	return genres, err
}

// GenreByID returns (nil, nil) when the genre is not in the catalog.
func (r *CatalogRepository) GenreByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var g domain.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

// GenresByIDs resolves catalog rows for the given ids, ascending. Unknown ids
// are simply absent from the result; callers compare lengths to detect them.
func (r *CatalogRepository) GenresByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error) {
	if len(ids) == 0 {
		return []domain.Genre{}, nil
	}
	var genres []domain.Genre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&genres).Error
	return genres, err
}

func (r *CatalogRepository) MpaRatings(ctx context.Context) ([]domain.MpaRating, error) {
	var ratings []domain.MpaRating
	err := r.db.WithContext(ctx).Order("id").Find(&ratings).Error
	return ratings, err
}

// MpaByID returns (nil, nil) when the rating is not in the catalog.
func (r *CatalogRepository) MpaByID(ctx context.Context, id int64) (*domain.MpaRating, error) {
	var m domain.MpaRating
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
