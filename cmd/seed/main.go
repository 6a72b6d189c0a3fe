package main

import (
	"context"
	"log"
	"time"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/domain"
	"filmorate/internal/repository"
)

// Seeds a demo dataset: users with friendships, films with genres, MPA
// ratings and likes. Wipes existing data first.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := database.SeedCatalogs(db); err != nil {
		log.Fatal("Catalog seed failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM friendships")
	db.Exec("DELETE FROM film_likes")
	db.Exec("DELETE FROM film_genres")
	db.Exec("DELETE FROM films")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	friendships := repository.NewFriendshipRepository(db)
	films := repository.NewFilmRepository(db)

	log.Println("Creating users...")
	demoUsers := []*domain.User{
		{Email: "alice@example.com", Login: "alice", Name: "Alice"},
		{Email: "bob@example.com", Login: "bob_77", Name: "Bob"},
		{Email: "carol@example.com", Login: "carol", Name: "Carol"},
	}
	birthday := domain.NewDate(1990, time.March, 14)
	demoUsers[0].Birthday = &birthday
	for _, u := range demoUsers {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("user seed failed:", err)
		}
	}

	// alice <-> bob confirmed, carol -> alice pending
	if err := friendships.CreateRequest(ctx, demoUsers[0].ID, demoUsers[1].ID); err != nil {
		log.Fatal(err)
	}
	if err := friendships.Confirm(ctx, demoUsers[1].ID, demoUsers[0].ID); err != nil {
		log.Fatal(err)
	}
	if err := friendships.CreateRequest(ctx, demoUsers[2].ID, demoUsers[0].ID); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating films...")
	arrival := domain.NewDate(1895, time.December, 28)
	modern := domain.NewDate(1999, time.March, 31)
	mpaG := int64(1)
	mpaR := int64(4)
	demoFilms := []*domain.Film{
		{
			Name:         "Arrival of a Train",
			Description:  "Fifty seconds that started it all.",
			ReleaseDate:  &arrival,
			Duration:     1,
			MpaID:        &mpaG,
			Genres:       []domain.Genre{{ID: 5}},
			LikedUserIDs: []int64{demoUsers[0].ID, demoUsers[1].ID},
		},
		{
			Name:         "The Matrix",
			Description:  "A hacker learns the truth about his reality.",
			ReleaseDate:  &modern,
			Duration:     136,
			MpaID:        &mpaR,
			Genres:       []domain.Genre{{ID: 4}, {ID: 6}},
			LikedUserIDs: []int64{demoUsers[2].ID},
		},
	}
	for _, f := range demoFilms {
		if err := films.Create(ctx, f); err != nil {
			log.Fatal("film seed failed:", err)
		}
	}

	log.Printf("Seed complete: %d users, %d films", len(demoUsers), len(demoFilms))
}
