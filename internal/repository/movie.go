package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rapidhub/rapidhub/pkg/model"
)

const movieColumns = `id, movie_id, title, overview, poster_path, release_date, vote_average,
	vote_count, popularity, genre_ids, search_date, is_active, created_at, updated_at`

func scanMovie(row pgx.Row) (*model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.MovieID, &m.Title, &m.Overview, &m.PosterPath, &m.ReleaseDate,
		&m.VoteAverage, &m.VoteCount, &m.Popularity, &m.GenreIDs, &m.SearchDate,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) collectMovies(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var out []model.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// InsertMovie persists a new movie row; the partial unique index on
// (movie_id) WHERE is_active rejects duplicate active ids atomically.
func (r *Repository) InsertMovie(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	const q = `INSERT INTO movies (movie_id, title, overview, poster_path, release_date, vote_average,
		vote_count, popularity, genre_ids, search_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + movieColumns
	saved, err := scanMovie(r.db.QueryRow(ctx, q, m.MovieID, m.Title, m.Overview, m.PosterPath,
		m.ReleaseDate, m.VoteAverage, m.VoteCount, m.Popularity, m.GenreIDs,
		m.SearchDate, m.IsActive, m.CreatedAt, m.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	return saved, nil
}

func (r *Repository) GetActiveMovie(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE id = $1 AND is_active = true`
	m, err := scanMovie(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query movie: %w", err)
	}
	return m, nil
}

func (r *Repository) UpdateMovie(ctx context.Context, id int64, m *model.Movie) (*model.Movie, error) {
	const q = `UPDATE movies SET title = $1, overview = $2, poster_path = $3, release_date = $4,
		vote_average = $5, vote_count = $6, popularity = $7, genre_ids = $8, updated_at = $9
		WHERE id = $10 AND is_active = true
		RETURNING ` + movieColumns
	saved, err := scanMovie(r.db.QueryRow(ctx, q, m.Title, m.Overview, m.PosterPath, m.ReleaseDate,
		m.VoteAverage, m.VoteCount, m.Popularity, m.GenreIDs, m.UpdatedAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return saved, nil
}

func (r *Repository) SoftDeleteMovie(ctx context.Context, id int64, now time.Time) error {
	const q = `UPDATE movies SET is_active = false, updated_at = $1 WHERE id = $2 AND is_active = true`
	tag, err := r.db.Exec(ctx, q, now, id)
	if err != nil {
		return fmt.Errorf("soft delete movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) RestoreMovie(ctx context.Context, id int64, now time.Time) error {
	const qSel = `SELECT is_active FROM movies WHERE id = $1`
	var active bool
	if err := r.db.QueryRow(ctx, qSel, id).Scan(&active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("query movie state: %w", err)
	}
	if active {
		return ErrAlreadyActive
	}

	const q = `UPDATE movies SET is_active = true, updated_at = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, q, now, id); err != nil {
		return fmt.Errorf("restore movie: %w", err)
	}
	return nil
}

func (r *Repository) ListActiveMovies(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE is_active = true ORDER BY created_at DESC`
	return r.collectMovies(ctx, q)
}

func (r *Repository) FindMoviesByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies
		WHERE title ILIKE '%' || $1 || '%' AND is_active = true ORDER BY created_at DESC`
	return r.collectMovies(ctx, q, title)
}

// ListInactiveMovies returns soft-deleted rows, most recently deleted first.
func (r *Repository) ListInactiveMovies(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE is_active = false ORDER BY updated_at DESC`
	return r.collectMovies(ctx, q)
}

func (r *Repository) GetInactiveMovie(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE id = $1 AND is_active = false`
	m, err := scanMovie(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query deleted movie: %w", err)
	}
	return m, nil
}
