package domain

import "time"

type Film struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255"`
	Description string `json:"description,omitempty" gorm:"size:200"`
	ReleaseDate *Date  `json:"release_date,omitempty"`
	Duration    int64  `json:"duration"`
	MpaID       *int64 `json:"-" gorm:"column:mpa_id"`
	// likes_count is persisted redundantly so popularity queries need no join;
	// it must always equal len(LikedUserIDs).
	LikesCount   int        `json:"likes_count" gorm:"column:likes_count"`
	Mpa          *MpaRating `json:"mpa,omitempty" gorm:"-"`
	Genres       []Genre    `json:"genres" gorm:"-"`
	LikedUserIDs []int64    `json:"liked_user_ids" gorm:"-"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

func (Film) TableName() string { return "films" }

// LikedBy reports whether userID is in the film's like set.
func (f *Film) LikedBy(userID int64) bool {
	for _, id := range f.LikedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// FilmGenre is a film-to-genre association row.
type FilmGenre struct {
	FilmID  int64 `gorm:"column:film_id;primaryKey"`
	GenreID int64 `gorm:"column:genre_id;primaryKey"`
}

func (FilmGenre) TableName() string { return "film_genres" }

// FilmLike is a film-to-user like row.
type FilmLike struct {
	FilmID int64 `gorm:"column:film_id;primaryKey"`
	UserID int64 `gorm:"column:user_id;primaryKey"`
}

func (FilmLike) TableName() string { return "film_likes" }
