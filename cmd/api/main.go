package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"filmorate/internal/database"
	"filmorate/internal/middleware"
	"filmorate/internal/modules/catalog"
	"filmorate/internal/modules/feed"
	"filmorate/internal/modules/film"
	"filmorate/internal/modules/review"
	"filmorate/internal/modules/user"
	"filmorate/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	mpaRepo := repository.NewMpaRepository(db)
	directorRepo := repository.NewDirectorRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	eventRepo := repository.NewEventRepository(db)

	feedService := feed.NewService(eventRepo, userRepo)
	feedHandler := feed.NewHandler(feedService)

	userService := user.NewService(userRepo, filmRepo, feedService)
	userHandler := user.NewHandler(userService)

	filmService := film.NewService(filmRepo, userRepo, feedService)
	filmHandler := film.NewHandler(filmService)

	reviewService := review.NewService(reviewRepo, userRepo, filmRepo, feedService)
	reviewHandler := review.NewHandler(reviewService)

	catalogService := catalog.NewService(genreRepo, mpaRepo, directorRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		filmHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		feedHandler.RegisterRoutes(v1)
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
