package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rapidhub/rapidhub/internal/rapidapi"
	"github.com/rapidhub/rapidhub/pkg/apierror"
	"github.com/rapidhub/rapidhub/pkg/model"
	"go.uber.org/zap"
)

const resourceMovie = "Movie"

// MovieStore is the persistence surface the movie service needs.
type MovieStore interface {
	InsertMovie(ctx context.Context, m *model.Movie) (*model.Movie, error)
	GetActiveMovie(ctx context.Context, id int64) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id int64, m *model.Movie) (*model.Movie, error)
	SoftDeleteMovie(ctx context.Context, id int64, now time.Time) error
	RestoreMovie(ctx context.Context, id int64, now time.Time) error
	ListActiveMovies(ctx context.Context) ([]model.Movie, error)
	FindMoviesByTitle(ctx context.Context, title string) ([]model.Movie, error)
	ListInactiveMovies(ctx context.Context) ([]model.Movie, error)
	GetInactiveMovie(ctx context.Context, id int64) (*model.Movie, error)
}

// MovieSearcher is the slice of the RapidAPI client the movie service uses.
type MovieSearcher interface {
	SearchMovies(ctx context.Context, title string) (*rapidapi.MovieSearchResponse, error)
	LookupMovie(ctx context.Context, title string) (*rapidapi.MovieData, error)
}

type MovieService struct {
	store  MovieStore
	client MovieSearcher
	logger *zap.Logger
}

func NewMovieService(store MovieStore, client MovieSearcher, logger *zap.Logger) *MovieService {
	return &MovieService{store: store, client: client, logger: logger}
}

func (s *MovieService) Create(ctx context.Context, req *model.CreateMovieRequest) (*model.Movie, error) {
	now := time.Now()
	movie := &model.Movie{
		MovieID:     req.MovieID,
		Title:       req.Title,
		Overview:    req.Overview,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
		VoteAverage: req.VoteAverage,
		VoteCount:   req.VoteCount,
		Popularity:  req.Popularity,
		GenreIDs:    req.GenreIDs,
		SearchDate:  now.Format(time.RFC3339),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.store.InsertMovie(ctx, movie)
	if err != nil {
		return nil, storeError(resourceMovie, err)
	}
	return saved, nil
}

func (s *MovieService) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	movie, err := s.store.GetActiveMovie(ctx, id)
	if err != nil {
		return nil, storeError(resourceMovie, err)
	}
	return movie, nil
}

func (s *MovieService) Update(ctx context.Context, id int64, req *model.UpdateMovieRequest) (*model.Movie, error) {
	movie := &model.Movie{
		Title:       req.Title,
		Overview:    req.Overview,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
		VoteAverage: req.VoteAverage,
		VoteCount:   req.VoteCount,
		Popularity:  req.Popularity,
		GenreIDs:    req.GenreIDs,
		UpdatedAt:   time.Now(),
	}

	saved, err := s.store.UpdateMovie(ctx, id, movie)
	if err != nil {
		return nil, storeError(resourceMovie, err)
	}
	return saved, nil
}

func (s *MovieService) SoftDelete(ctx context.Context, id int64) error {
	if err := s.store.SoftDeleteMovie(ctx, id, time.Now()); err != nil {
		return storeError(resourceMovie, err)
	}
	return nil
}

func (s *MovieService) Restore(ctx context.Context, id int64) error {
	if err := s.store.RestoreMovie(ctx, id, time.Now()); err != nil {
		return storeError(resourceMovie, err)
	}
	return nil
}

func (s *MovieService) ListActive(ctx context.Context) ([]model.Movie, error) {
	return s.store.ListActiveMovies(ctx)
}

func (s *MovieService) FindByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	return s.store.FindMoviesByTitle(ctx, title)
}

// ListDeleted returns soft-deleted movies for review before restore.
func (s *MovieService) ListDeleted(ctx context.Context) ([]model.Movie, error) {
	return s.store.ListInactiveMovies(ctx)
}

func (s *MovieService) GetDeletedByID(ctx context.Context, id int64) (*model.Movie, error) {
	movie, err := s.store.GetInactiveMovie(ctx, id)
	if err != nil {
		return nil, storeError(resourceMovie, err)
	}
	return movie, nil
}

// joinGenreIDs flattens the upstream genre id list into the comma-joined
// form the movies table stores.
func joinGenreIDs(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func movieFromData(md rapidapi.MovieData, searchDate string) *model.Movie {
	now := time.Now()
	return &model.Movie{
		MovieID:     md.ID,
		Title:       md.Title,
		Overview:    md.Overview,
		PosterPath:  md.PosterPath,
		ReleaseDate: md.ReleaseDate,
		VoteAverage: md.VoteAverage,
		VoteCount:   md.VoteCount,
		Popularity:  md.Popularity,
		GenreIDs:    joinGenreIDs(md.GenreIDs),
		SearchDate:  searchDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SearchAndStore queries the movie API and persists every result. Results
// already stored as active rows are skipped so repeated searches do not
// fail on their own earlier ingests.
func (s *MovieService) SearchAndStore(ctx context.Context, title string) ([]model.Movie, error) {
	resp, err := s.client.SearchMovies(ctx, title)
	if err != nil {
		return nil, err
	}

	searchDate := time.Now().Format(time.RFC3339)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		saved    []model.Movie
		firstErr error
	)
	for _, md := range resp.Movies {
		if md.ID == "" {
			s.logger.Warn("skipping movie entry without id", zap.String("title", md.Title))
			continue
		}
		wg.Add(1)
		go func(md rapidapi.MovieData) {
			defer wg.Done()
			row, err := s.store.InsertMovie(ctx, movieFromData(md, searchDate))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if apierror.Is(storeError(resourceMovie, err), apierror.CodeDuplicateID) {
					s.logger.Debug("movie already stored, skipping", zap.String("movie_id", md.ID))
					return
				}
				if firstErr == nil {
					firstErr = storeError(resourceMovie, err)
				}
				return
			}
			saved = append(saved, *row)
		}(md)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return saved, nil
}

// LookupAndStore resolves a single movie by title and persists it.
func (s *MovieService) LookupAndStore(ctx context.Context, title string) (*model.Movie, error) {
	md, err := s.client.LookupMovie(ctx, title)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.InsertMovie(ctx, movieFromData(*md, time.Now().Format(time.RFC3339)))
	if err != nil {
		return nil, storeError(resourceMovie, err)
	}
	return saved, nil
}
