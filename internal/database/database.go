package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	// registers the CGO-free "sqlite" driver used for local development
	_ "modernc.org/sqlite"

	"filmorate/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every entity, reference tables
// included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Genre{},
		&domain.MpaRating{},
		&domain.Film{},
		&domain.FilmGenre{},
		&domain.FilmLike{},
		&domain.Friendship{},
	)
}

// SeedCatalogs inserts the fixed genre and MPA reference rows. Existing rows
// are left untouched, so it is safe to run on every startup.
func SeedCatalogs(db *gorm.DB) error {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.DefaultGenres).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.DefaultMpaRatings).Error
}
