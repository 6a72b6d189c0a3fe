package domain

// Genre is a fixed catalog entry, read-only through the API.
type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64"`
}

func (Genre) TableName() string { return "genres" }

// MpaRating is the MPA content rating catalog entry (G..NC-17), read-only
// through the API.
type MpaRating struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:16"`
}

func (MpaRating) TableName() string { return "mpa_ratings" }

// DefaultGenres and DefaultMpaRatings are seeded at startup.
var DefaultGenres = []Genre{
	{ID: 1, Name: "Comedy"},
	{ID: 2, Name: "Drama"},
	{ID: 3, Name: "Cartoon"},
	{ID: 4, Name: "Thriller"},
	{ID: 5, Name: "Documentary"},
	{ID: 6, Name: "Action"},
}

var DefaultMpaRatings = []MpaRating{
	{ID: 1, Name: "G"},
	{ID: 2, Name: "PG"},
	{ID: 3, Name: "PG-13"},
	{ID: 4, Name: "R"},
	{ID: 5, Name: "NC-17"},
}
