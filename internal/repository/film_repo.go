package repository

import (
	"context"
	"time"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// PopularFilter narrows the popularity ranking. Nil fields mean the
// filter is absent; Count <= 0 is coerced by the service.
type PopularFilter struct {
	Count   int
	GenreID *int64
	Year    *int
}

// LikeRow is one row of the likes_film table, exposed for the
// recommendation computation in the user service.
type LikeRow struct {
	FilmID int64
	UserID int64
}

func toDomainFilm(m filmModel) *domain.Film {
	return &domain.Film{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ReleaseDate: domain.Date{Time: m.ReleaseDate},
		Duration:    m.Duration,
		Genres:      []domain.Genre{},
		Directors:   []domain.Director{},
		Likes:       []int64{},
	}
}

func toFilmModel(f *domain.Film) filmModel {
	return filmModel{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate.Time,
		Duration:    f.Duration,
	}
}

func (r *FilmRepository) Create(ctx context.Context, f *domain.Film) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toFilmModel(f)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		f.ID = m.ID
		return r.syncAttributes(tx, f)
	})
}

func (r *FilmRepository) Update(ctx context.Context, f *domain.Film) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toFilmModel(f)
		res := tx.Model(&filmModel{}).Where("id = ?", f.ID).Updates(map[string]any{
			"name":         m.Name,
			"description":  m.Description,
			"release_date": m.ReleaseDate,
			"duration":     m.Duration,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := r.syncAttributes(tx, f); err != nil {
			return err
		}
		likes, err := r.likesFor(tx, f.ID)
		if err != nil {
			return err
		}
		f.Likes = likes
		return nil
	})
}

// syncAttributes rewrites the mpa, genre and director join rows so
// they match the film object, resolving reference names from the
// lookup tables. Unknown ids surface as gorm.ErrRecordNotFound.
func (r *FilmRepository) syncAttributes(tx *gorm.DB, f *domain.Film) error {
	var mpa mpaModel
	if err := tx.First(&mpa, f.Mpa.ID).Error; err != nil {
		return err
	}
	f.Mpa = domain.Mpa{ID: mpa.ID, Name: mpa.Name}

	genreIDs := dedupe(genreIDsOf(f.Genres))
	var genres []genreModel
	if len(genreIDs) > 0 {
		if err := tx.Where("genre_id IN ?", genreIDs).Order("genre_id").Find(&genres).Error; err != nil {
			return err
		}
		if len(genres) != len(genreIDs) {
			return gorm.ErrRecordNotFound
		}
	}
	f.Genres = make([]domain.Genre, 0, len(genres))
	for _, g := range genres {
		f.Genres = append(f.Genres, domain.Genre{ID: g.ID, Name: g.Name})
	}

	directorIDs := dedupe(directorIDsOf(f.Directors))
	var directors []directorModel
	if len(directorIDs) > 0 {
		if err := tx.Where("id IN ?", directorIDs).Order("id").Find(&directors).Error; err != nil {
			return err
		}
		if len(directors) != len(directorIDs) {
			return gorm.ErrRecordNotFound
		}
	}
	f.Directors = make([]domain.Director, 0, len(directors))
	for _, d := range directors {
		f.Directors = append(f.Directors, domain.Director{ID: d.ID, Name: d.Name})
	}

	if err := tx.Where("film_id = ?", f.ID).Delete(&filmMpaModel{}).Error; err != nil {
		return err
	}
	if err := tx.Create(&filmMpaModel{FilmID: f.ID, MpaID: f.Mpa.ID}).Error; err != nil {
		return err
	}

	if err := tx.Where("film_id = ?", f.ID).Delete(&filmGenreModel{}).Error; err != nil {
		return err
	}
	for _, id := range genreIDs {
		if err := tx.Create(&filmGenreModel{FilmID: f.ID, GenreID: id}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("film_id = ?", f.ID).Delete(&filmDirectorModel{}).Error; err != nil {
		return err
	}
	for _, id := range directorIDs {
		if err := tx.Create(&filmDirectorModel{FilmID: f.ID, DirectorID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *FilmRepository) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	var m filmModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	f := toDomainFilm(m)
	if err := r.loadAttributes(ctx, []*domain.Film{f}); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FilmRepository) GetAll(ctx context.Context) ([]domain.Film, error) {
	var rows []filmModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.filmsFromRows(ctx, rows)
}

// ListByIDs loads films with attributes, preserving the order of ids.
func (r *FilmRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Film, error) {
	if len(ids) == 0 {
		return []domain.Film{}, nil
	}
	var rows []filmModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	films, err := r.filmsFromRows(ctx, rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Film, len(films))
	for _, f := range films {
		byID[f.ID] = f
	}
	out := make([]domain.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *FilmRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&filmMpaModel{}, &filmGenreModel{}, &filmDirectorModel{}, &filmLikeModel{}} {
			if err := tx.Where("film_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&filmModel{}, id).Error
	})
}

// AddLike overwrites rather than duplicates: a second like from the
// same user leaves a single row.
func (r *FilmRepository) AddLike(ctx context.Context, filmID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ? AND user_id = ?", filmID, userID).
			Delete(&filmLikeModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&filmLikeModel{FilmID: filmID, UserID: userID}).Error
	})
}

func (r *FilmRepository) RemoveLike(ctx context.Context, filmID, userID int64) error {
	return r.db.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&filmLikeModel{}).Error
}

// LikedFilmIDs returns every film id the user has liked.
func (r *FilmRepository) LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&filmLikeModel{}).
		Where("user_id = ?", userID).
		Order("film_id").
		Pluck("film_id", &ids).Error
	return ids, err
}

// LikesForFilms returns all like rows touching any of the given films.
func (r *FilmRepository) LikesForFilms(ctx context.Context, filmIDs []int64) ([]LikeRow, error) {
	if len(filmIDs) == 0 {
		return []LikeRow{}, nil
	}
	var rows []filmLikeModel
	if err := r.db.WithContext(ctx).
		Where("film_id IN ?", filmIDs).
		Order("user_id, film_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]LikeRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, LikeRow{FilmID: row.FilmID, UserID: row.UserID})
	}
	return out, nil
}

// Popular ranks films by like count, optionally narrowed to a genre
// and/or release year.
func (r *FilmRepository) Popular(ctx context.Context, filter PopularFilter) ([]domain.Film, error) {
	q := r.db.WithContext(ctx).
		Table("films").
		Select("films.id").
		Joins("LEFT JOIN likes_film ON likes_film.film_id = films.id")
	if filter.GenreID != nil {
		q = q.Joins("JOIN films_genres ON films_genres.film_id = films.id").
			Where("films_genres.genre_id = ?", *filter.GenreID)
	}
	if filter.Year != nil {
		from := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("films.release_date >= ? AND films.release_date < ?",
			from, from.AddDate(1, 0, 0))
	}
	var ids []int64
	err := q.Group("films.id").
		Order("COUNT(likes_film.user_id) DESC, films.id").
		Limit(filter.Count).
		Pluck("films.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return r.ListByIDs(ctx, ids)
}

// Search matches the query case-insensitively against film titles
// and/or director names, ranked by like count.
func (r *FilmRepository) Search(ctx context.Context, query, by string) ([]domain.Film, error) {
	pattern := "%" + query + "%"
	q := r.db.WithContext(ctx).
		Table("films").
		Select("films.id").
		Joins("LEFT JOIN likes_film ON likes_film.film_id = films.id")
	switch by {
	case "title":
		q = q.Where("LOWER(films.name) LIKE LOWER(?)", pattern)
	case "director":
		q = q.Joins("JOIN films_directors ON films_directors.film_id = films.id").
			Joins("JOIN directors ON directors.id = films_directors.director_id").
			Where("LOWER(directors.name) LIKE LOWER(?)", pattern)
	case "both":
		q = q.Joins("LEFT JOIN films_directors ON films_directors.film_id = films.id").
			Joins("LEFT JOIN directors ON directors.id = films_directors.director_id").
			Where("LOWER(films.name) LIKE LOWER(?) OR LOWER(directors.name) LIKE LOWER(?)",
				pattern, pattern)
	}
	var ids []int64
	err := q.Group("films.id").
		Order("COUNT(likes_film.user_id) DESC, films.id").
		Pluck("films.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return r.ListByIDs(ctx, ids)
}

// ByDirector lists a director's films sorted by like count or release
// year. An empty result means the director credited no films.
func (r *FilmRepository) ByDirector(ctx context.Context, directorID int64, sortBy string) ([]domain.Film, error) {
	q := r.db.WithContext(ctx).
		Table("films").
		Select("films.id").
		Joins("JOIN films_directors ON films_directors.film_id = films.id").
		Joins("LEFT JOIN likes_film ON likes_film.film_id = films.id").
		Where("films_directors.director_id = ?", directorID).
		Group("films.id")
	switch sortBy {
	case "likes":
		q = q.Order("COUNT(likes_film.user_id), films.id")
	case "year":
		q = q.Order("films.release_date, films.id")
	}
	var ids []int64
	if err := q.Pluck("films.id", &ids).Error; err != nil {
		return nil, err
	}
	return r.ListByIDs(ctx, ids)
}

func (r *FilmRepository) filmsFromRows(ctx context.Context, rows []filmModel) ([]domain.Film, error) {
	films := make([]*domain.Film, 0, len(rows))
	for _, m := range rows {
		films = append(films, toDomainFilm(m))
	}
	if err := r.loadAttributes(ctx, films); err != nil {
		return nil, err
	}
	out := make([]domain.Film, 0, len(films))
	for _, f := range films {
		out = append(out, *f)
	}
	return out, nil
}

// loadAttributes fills mpa, genres, directors and likes for a batch of
// films with one query per join table.
func (r *FilmRepository) loadAttributes(ctx context.Context, films []*domain.Film) error {
	if len(films) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(films))
	byID := make(map[int64]*domain.Film, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
		byID[f.ID] = f
	}

	type mpaRow struct {
		FilmID int64
		ID     int64
		Name   string
	}
	var mpaRows []mpaRow
	if err := r.db.WithContext(ctx).
		Table("films_mpa").
		Select("films_mpa.film_id AS film_id, mpa.id AS id, mpa.mpa_name AS name").
		Joins("JOIN mpa ON mpa.id = films_mpa.mpa_id").
		Where("films_mpa.film_id IN ?", ids).
		Scan(&mpaRows).Error; err != nil {
		return err
	}
	for _, row := range mpaRows {
		byID[row.FilmID].Mpa = domain.Mpa{ID: row.ID, Name: row.Name}
	}

	type genreRow struct {
		FilmID int64
		ID     int64
		Name   string
	}
	var genreRows []genreRow
	if err := r.db.WithContext(ctx).
		Table("films_genres").
		Select("films_genres.film_id AS film_id, genres.genre_id AS id, genres.genre_name AS name").
		Joins("JOIN genres ON genres.genre_id = films_genres.genre_id").
		Where("films_genres.film_id IN ?", ids).
		Order("films_genres.film_id, genres.genre_id").
		Scan(&genreRows).Error; err != nil {
		return err
	}
	for _, row := range genreRows {
		f := byID[row.FilmID]
		f.Genres = append(f.Genres, domain.Genre{ID: row.ID, Name: row.Name})
	}

	type directorRow struct {
		FilmID int64
		ID     int64
		Name   string
	}
	var directorRows []directorRow
	if err := r.db.WithContext(ctx).
		Table("films_directors").
		Select("films_directors.film_id AS film_id, directors.id AS id, directors.name AS name").
		Joins("JOIN directors ON directors.id = films_directors.director_id").
		Where("films_directors.film_id IN ?", ids).
		Order("films_directors.film_id, directors.id").
		Scan(&directorRows).Error; err != nil {
		return err
	}
	for _, row := range directorRows {
		f := byID[row.FilmID]
		f.Directors = append(f.Directors, domain.Director{ID: row.ID, Name: row.Name})
	}

	var likeRows []filmLikeModel
	if err := r.db.WithContext(ctx).
		Where("film_id IN ?", ids).
		Order("film_id, user_id").
		Find(&likeRows).Error; err != nil {
		return err
	}
	for _, row := range likeRows {
		f := byID[row.FilmID]
		f.Likes = append(f.Likes, row.UserID)
	}
	return nil
}

func (r *FilmRepository) likesFor(tx *gorm.DB, filmID int64) ([]int64, error) {
	likes := []int64{}
	err := tx.Model(&filmLikeModel{}).
		Where("film_id = ?", filmID).
		Order("user_id").
		Pluck("user_id", &likes).Error
	return likes, err
}

func genreIDsOf(genres []domain.Genre) []int64 {
	ids := make([]int64, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}

func directorIDsOf(directors []domain.Director) []int64 {
	ids := make([]int64, 0, len(directors))
	for _, d := range directors {
		ids = append(ids, d.ID)
	}
	return ids
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
