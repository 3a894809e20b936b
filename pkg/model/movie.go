package model

import "time"

// Movie is a stored movie, created directly or ingested from the external
// movie search API. GenreIDs is kept as the comma-joined upstream list.
type Movie struct {
	ID          int64     `json:"id"`
	MovieID     string    `json:"movie_id"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	PosterPath  string    `json:"poster_path"`
	ReleaseDate string    `json:"release_date"`
	VoteAverage float64   `json:"vote_average"`
	VoteCount   int       `json:"vote_count"`
	Popularity  float64   `json:"popularity"`
	GenreIDs    string    `json:"genre_ids"`
	SearchDate  string    `json:"search_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateMovieRequest struct {
	MovieID     string  `json:"movie_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average" binding:"min=0,max=10"`
	VoteCount   int     `json:"vote_count" binding:"min=0"`
	Popularity  float64 `json:"popularity" binding:"min=0"`
	GenreIDs    string  `json:"genre_ids"`
}

type UpdateMovieRequest struct {
	Title       string  `json:"title" binding:"required"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average" binding:"min=0,max=10"`
	VoteCount   int     `json:"vote_count" binding:"min=0"`
	Popularity  float64 `json:"popularity" binding:"min=0"`
	GenreIDs    string  `json:"genre_ids"`
}
