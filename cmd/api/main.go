package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/middleware"
	"filmorate/internal/modules/catalog"
	"filmorate/internal/modules/film"
	"filmorate/internal/modules/user"
	"filmorate/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := database.SeedCatalogs(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	userService := user.NewService(userRepo, friendshipRepo)
	userHandler := user.NewHandler(userService)

	filmService := film.NewService(filmRepo, userRepo, catalogRepo)
	filmHandler := film.NewHandler(filmService)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	root := r.Group("/")
	{
		userHandler.RegisterRoutes(root)
		filmHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
