package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Row models for the relational schema. Domain structs stay free of
// persistence tags; converters live next to each repository.

type userModel struct {
	ID       int64     `gorm:"column:id;primaryKey"`
	Email    string    `gorm:"column:email"`
	Login    string    `gorm:"column:login"`
	Name     string    `gorm:"column:name"`
	Birthday time.Time `gorm:"column:birthday"`
}

func (userModel) TableName() string { return "users" }

// friendshipModel is one directed relation. Mutual friendship is two
// rows with mutually=true; a pending request is a single row with
// mutually=false.
type friendshipModel struct {
	UserID   int64 `gorm:"column:user1_id;primaryKey;autoIncrement:false"`
	FriendID int64 `gorm:"column:user2_id;primaryKey;autoIncrement:false"`
	Mutual   bool  `gorm:"column:mutually"`
}

func (friendshipModel) TableName() string { return "users_friendship" }

type filmModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	ReleaseDate time.Time `gorm:"column:release_date"`
	Duration    int       `gorm:"column:duration"`
}

func (filmModel) TableName() string { return "films" }

type filmMpaModel struct {
	FilmID int64 `gorm:"column:film_id;primaryKey;autoIncrement:false"`
	MpaID  int64 `gorm:"column:mpa_id"`
}

func (filmMpaModel) TableName() string { return "films_mpa" }

type filmGenreModel struct {
	FilmID  int64 `gorm:"column:film_id;primaryKey;autoIncrement:false"`
	GenreID int64 `gorm:"column:genre_id;primaryKey;autoIncrement:false"`
}

func (filmGenreModel) TableName() string { return "films_genres" }

type filmDirectorModel struct {
	FilmID     int64 `gorm:"column:film_id;primaryKey;autoIncrement:false"`
	DirectorID int64 `gorm:"column:director_id;primaryKey;autoIncrement:false"`
}

func (filmDirectorModel) TableName() string { return "films_directors" }

type filmLikeModel struct {
	FilmID int64 `gorm:"column:film_id;primaryKey;autoIncrement:false"`
	UserID int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
}

func (filmLikeModel) TableName() string { return "likes_film" }

type genreModel struct {
	ID   int64  `gorm:"column:genre_id;primaryKey"`
	Name string `gorm:"column:genre_name"`
}

func (genreModel) TableName() string { return "genres" }

type mpaModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:mpa_name"`
}

func (mpaModel) TableName() string { return "mpa" }

type directorModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (directorModel) TableName() string { return "directors" }

type reviewModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	Content    string `gorm:"column:content"`
	IsPositive bool   `gorm:"column:is_positive"`
	Useful     int    `gorm:"column:useful"`
	UserID     int64  `gorm:"column:user_id"`
	FilmID     int64  `gorm:"column:film_id"`
}

func (reviewModel) TableName() string { return "reviews" }

// reviewGradeModel holds one signed grade (+1/-1) per (review, user)
// pair; the composite key keeps a second like from double counting.
type reviewGradeModel struct {
	ReviewID int64 `gorm:"column:review_id;primaryKey;autoIncrement:false"`
	UserID   int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Grade    int   `gorm:"column:grade"`
}

func (reviewGradeModel) TableName() string { return "likes_review" }

type eventModel struct {
	ID        int64     `gorm:"column:event_id;primaryKey"`
	EventTime time.Time `gorm:"column:event_time"`
	EventType string    `gorm:"column:event_type"`
	Operation string    `gorm:"column:operation"`
	UserID    int64     `gorm:"column:user_id"`
	EntityID  int64     `gorm:"column:entity_id"`
}

func (eventModel) TableName() string { return "events" }

// Migrate creates or updates every table of the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&friendshipModel{},
		&filmModel{},
		&filmMpaModel{},
		&filmGenreModel{},
		&filmDirectorModel{},
		&filmLikeModel{},
		&genreModel{},
		&mpaModel{},
		&directorModel{},
		&reviewModel{},
		&reviewGradeModel{},
		&eventModel{},
	)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
