package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"filmorate/internal/database"
	"filmorate/internal/domain"
	"filmorate/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "filmorate.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM likes_review")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM likes_film")
	db.Exec("DELETE FROM films_directors")
	db.Exec("DELETE FROM films_genres")
	db.Exec("DELETE FROM films_mpa")
	db.Exec("DELETE FROM films")
	db.Exec("DELETE FROM users_friendship")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM directors")
	db.Exec("DELETE FROM genres")
	db.Exec("DELETE FROM mpa")

	// ================== DICTIONARIES ==================
	log.Println("Seeding genres and MPA ratings...")
	genres := []string{"Комедия", "Драма", "Мультфильм", "Триллер", "Документальный", "Боевик"}
	for i, name := range genres {
		db.Exec("INSERT INTO genres (genre_id, genre_name) VALUES (?, ?)", i+1, name)
	}
	ratings := []string{"G", "PG", "PG-13", "R", "NC-17"}
	for i, name := range ratings {
		db.Exec("INSERT INTO mpa (id, mpa_name) VALUES (?, ?)", i+1, name)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	directorRepo := repository.NewDirectorRepository(db)

	// ================== DIRECTORS ==================
	log.Println("Creating directors...")
	directors := make([]domain.Director, 0, 3)
	for _, name := range []string{"Стэнли Кубрик", "Андрей Тарковский", "Хаяо Миядзаки"} {
		d := domain.Director{Name: name}
		if err := directorRepo.Create(ctx, &d); err != nil {
			log.Fatal("director seed failed:", err)
		}
		directors = append(directors, d)
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	users := []domain.User{
		{Email: "asel@mail.kz", Login: "asel", Name: "Асель", Birthday: domain.NewDate(1995, 3, 14)},
		{Email: "bekzat@gmail.com", Login: "bekzat", Name: "Бекзат", Birthday: domain.NewDate(1990, 7, 2)},
		{Email: "dina@yandex.kz", Login: "dina", Name: "", Birthday: domain.NewDate(1988, 11, 30)},
	}
	for i := range users {
		if users[i].Name == "" {
			users[i].Name = users[i].Login
		}
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Fatal("user seed failed:", err)
		}
	}

	// ================== FILMS ==================
	log.Println("Creating films...")
	films := []domain.Film{
		{
			Name:        "Космическая одиссея",
			Description: "Путешествие за пределы бесконечности",
			ReleaseDate: domain.NewDate(1968, 4, 2),
			Duration:    149,
			Mpa:         domain.Mpa{ID: 1},
			Genres:      []domain.Genre{{ID: 2}, {ID: 4}},
			Directors:   []domain.Director{{ID: directors[0].ID}},
		},
		{
			Name:        "Солярис",
			Description: "Станция над разумным океаном",
			ReleaseDate: domain.NewDate(1972, 3, 20),
			Duration:    167,
			Mpa:         domain.Mpa{ID: 2},
			Genres:      []domain.Genre{{ID: 2}},
			Directors:   []domain.Director{{ID: directors[1].ID}},
		},
		{
			Name:        "Унесённые призраками",
			Description: "Девочка в мире духов",
			ReleaseDate: domain.NewDate(2001, 7, 20),
			Duration:    125,
			Mpa:         domain.Mpa{ID: 2},
			Genres:      []domain.Genre{{ID: 3}},
			Directors:   []domain.Director{{ID: directors[2].ID}},
		},
	}
	for i := range films {
		if err := filmRepo.Create(ctx, &films[i]); err != nil {
			log.Fatal("film seed failed:", err)
		}
	}

	// ================== SOCIAL GRAPH ==================
	log.Println("Creating friendships and likes...")
	if err := userRepo.AddFriend(ctx, users[0].ID, users[1].ID); err != nil {
		log.Fatal("friendship seed failed:", err)
	}
	if err := userRepo.AddFriend(ctx, users[1].ID, users[0].ID); err != nil {
		log.Fatal("friendship seed failed:", err)
	}
	if err := userRepo.AddFriend(ctx, users[2].ID, users[0].ID); err != nil {
		log.Fatal("friendship seed failed:", err)
	}
	likes := []struct{ film, user int }{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 2},
	}
	for _, l := range likes {
		if err := filmRepo.AddLike(ctx, films[l.film].ID, users[l.user].ID); err != nil {
			log.Fatal("like seed failed:", err)
		}
	}

	log.Println("Seed complete.")
}
