package film

import (
	"sort"
	"time"

	"filmorate/internal/domain"
)

// minReleaseDate is the day cinema was invented; no film can predate it.
var minReleaseDate = domain.NewDate(1895, time.December, 28)

type GenreRef struct {
	ID int64 `json:"id"`
}

type RatingRef struct {
	ID int64 `json:"id"`
}

// FilmRequest is the payload for both create and update. Optional fields are
// pointers so an absent field can be told apart from a zero value during
// merge-on-update.
type FilmRequest struct {
	ID          *int64       `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Description *string      `json:"description" validate:"omitempty,max=200"`
	ReleaseDate *domain.Date `json:"release_date"`
	Duration    *int64       `json:"duration"`
	Mpa         *RatingRef   `json:"mpa"`
	Genres      []GenreRef   `json:"genres"`
}

// Validate applies the boundary rules: release date not before 1895-12-28
// (the boundary itself is allowed) and a positive duration, each checked only
// when the field is present.
func (r *FilmRequest) Validate(structErrs map[string]string) map[string]string {
	errs := map[string]string{}
	for k, v := range structErrs {
		errs[k] = v
	}
	if r.ReleaseDate != nil && r.ReleaseDate.Before(minReleaseDate.Time) {
		errs["ReleaseDate"] = "must not be before 1895-12-28"
	}
	if r.Duration != nil && *r.Duration <= 0 {
		errs["Duration"] = "must be positive"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GenreIDs returns the referenced genre ids deduplicated and ascending, the
// canonical order for persisted genre sets.
func (r *FilmRequest) GenreIDs() []int64 {
	seen := make(map[int64]bool, len(r.Genres))
	ids := make([]int64, 0, len(r.Genres))
	for _, g := range r.Genres {
		if !seen[g.ID] {
			seen[g.ID] = true
			ids = append(ids, g.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
