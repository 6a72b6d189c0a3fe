package repository

import (
	"context"
	"errors"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// Create inserts the base film row together with its genre and like
// association sets in one transaction, then fills in the generated id.
func (r *FilmRepository) Create(ctx context.Context, f *domain.Film) error {
	f.LikesCount = len(f.LikedUserIDs)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return err
		}
		return replaceAssociations(tx, f)
	})
}

// Update writes the full film record. Associations are replaced wholesale:
// the old genre and like rows are deleted and the current sets reinserted.
func (r *FilmRepository) Update(ctx context.Context, f *domain.Film) error {
	f.LikesCount = len(f.LikedUserIDs)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Film{ID: f.ID}).
			Select("name", "description", "release_date", "duration", "mpa_id", "likes_count").
			Updates(map[string]interface{}{
				"name":         f.Name,
				"description":  f.Description,
				"release_date": f.ReleaseDate,
				"duration":     f.Duration,
				"mpa_id":       f.MpaID,
				"likes_count":  f.LikesCount,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return replaceAssociations(tx, f)
	})
}

func replaceAssociations(tx *gorm.DB, f *domain.Film) error {
	if err := tx.Where("film_id = ?", f.ID).Delete(&domain.FilmGenre{}).Error; err != nil {
		return err
	}
	if err := tx.Where("film_id = ?", f.ID).Delete(&domain.FilmLike{}).Error; err != nil {
		return err
	}
	if len(f.Genres) > 0 {
		rows := make([]domain.FilmGenre, 0, len(f.Genres))
		for _, g := range f.Genres {
			rows = append(rows, domain.FilmGenre{FilmID: f.ID, GenreID: g.ID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(f.LikedUserIDs) > 0 {
		rows := make([]domain.FilmLike, 0, len(f.LikedUserIDs))
		for _, id := range f.LikedUserIDs {
			rows = append(rows, domain.FilmLike{FilmID: f.ID, UserID: id})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindByID returns (nil, nil) when the film does not exist.
func (r *FilmRepository) FindByID(ctx context.Context, id int64) (*domain.Film, error) {
	var f domain.Film
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	films := []domain.Film{f}
	if err := r.loadAssociations(ctx, films); err != nil {
		return nil, err
	}
	return &films[0], nil
}

func (r *FilmRepository) FindAll(ctx context.Context) ([]domain.Film, error) {
	var films []domain.Film
	if err := r.db.WithContext(ctx).Order("id").Find(&films).Error; err != nil {
		return nil, err
	}
	if err := r.loadAssociations(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

// FindPopular returns up to limit films ordered by like count descending,
// ties broken by ascending id.
func (r *FilmRepository) FindPopular(ctx context.Context, limit int) ([]domain.Film, error) {
	var films []domain.Film
	err := r.db.WithContext(ctx).
		Order("likes_count DESC, id").
		Limit(limit).
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadAssociations(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

// loadAssociations fills Genres, LikedUserIDs and Mpa for a batch of films
// with one query per association kind, avoiding an N+1 per film.
func (r *FilmRepository) loadAssociations(ctx context.Context, films []domain.Film) error {
	if len(films) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(films))
	byID := make(map[int64]*domain.Film, len(films))
	for i := range films {
		films[i].Genres = []domain.Genre{}
		films[i].LikedUserIDs = []int64{}
		ids = append(ids, films[i].ID)
		byID[films[i].ID] = &films[i]
	}

	var genreRows []struct {
		FilmID int64
		ID     int64
		Name   string
	}
	err := r.db.WithContext(ctx).Table("film_genres").
		Select("film_genres.film_id, genres.id, genres.name").
		Joins("JOIN genres ON genres.id = film_genres.genre_id").
		Where("film_genres.film_id IN ?", ids).
		Order("film_genres.film_id, genres.id").
		Scan(&genreRows).Error
	if err != nil {
		return err
	}
	for _, row := range genreRows {
		f := byID[row.FilmID]
		f.Genres = append(f.Genres, domain.Genre{ID: row.ID, Name: row.Name})
	}

	var likeRows []domain.FilmLike
	err = r.db.WithContext(ctx).
		Where("film_id IN ?", ids).
		Order("film_id, user_id").
		Find(&likeRows).Error
	if err != nil {
		return err
	}
	for _, row := range likeRows {
		f := byID[row.FilmID]
		f.LikedUserIDs = append(f.LikedUserIDs, row.UserID)
	}

	mpaIDs := make([]int64, 0, len(films))
	for i := range films {
		if films[i].MpaID != nil {
			mpaIDs = append(mpaIDs, *films[i].MpaID)
		}
	}
	if len(mpaIDs) > 0 {
		var ratings []domain.MpaRating
		if err := r.db.WithContext(ctx).Where("id IN ?", mpaIDs).Find(&ratings).Error; err != nil {
			return err
		}
		ratingByID := make(map[int64]domain.MpaRating, len(ratings))
		for _, m := range ratings {
			ratingByID[m.ID] = m
		}
		for i := range films {
			if films[i].MpaID != nil {
				if m, ok := ratingByID[*films[i].MpaID]; ok {
					rating := m
					films[i].Mpa = &rating
				}
			}
		}
	}
	return nil
}

// DeleteByID exists at the persistence layer only; no handler exposes it.
func (r *FilmRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ?", id).Delete(&domain.FilmGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", id).Delete(&domain.FilmLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Film{}, id).Error
	})
}

// DeleteAll wipes films and their association rows. Intended for test
// isolation.
func (r *FilmRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM film_genres",
			"DELETE FROM film_likes",
			"DELETE FROM films",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
