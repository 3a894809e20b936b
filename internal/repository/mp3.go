package repository

import (
	"context"
	"fmt"

	"github.com/rapidhub/rapidhub/pkg/model"
)

// InsertMP3 persists download metadata. MP3 rows have no soft-delete
// lifecycle and no uniqueness requirement on video_id.
func (r *Repository) InsertMP3(ctx context.Context, m *model.MP3) (*model.MP3, error) {
	const q = `INSERT INTO youtube_mp3 (title, link, video_id, quality, thumbnail, duration, search_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, link, video_id, quality, thumbnail, duration, search_date`
	var saved model.MP3
	err := r.db.QueryRow(ctx, q, m.Title, m.Link, m.VideoID, m.Quality, m.Thumbnail, m.Duration, m.SearchDate).
		Scan(&saved.ID, &saved.Title, &saved.Link, &saved.VideoID, &saved.Quality,
			&saved.Thumbnail, &saved.Duration, &saved.SearchDate)
	if err != nil {
		return nil, fmt.Errorf("insert mp3: %w", err)
	}
	return &saved, nil
}

func (r *Repository) ListMP3s(ctx context.Context) ([]model.MP3, error) {
	const q = `SELECT id, title, link, video_id, quality, thumbnail, duration, search_date
		FROM youtube_mp3 ORDER BY id DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query mp3s: %w", err)
	}
	defer rows.Close()

	var out []model.MP3
	for rows.Next() {
		var m model.MP3
		if err := rows.Scan(&m.ID, &m.Title, &m.Link, &m.VideoID, &m.Quality,
			&m.Thumbnail, &m.Duration, &m.SearchDate); err != nil {
			return nil, fmt.Errorf("scan mp3: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
