package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rapidhub/rapidhub/internal/repository"
	"github.com/rapidhub/rapidhub/pkg/model"
)

// In-memory stores mirroring the repository semantics, including the
// partial-unique behavior on active external ids.

type memJobStore struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]*model.Job
}

func newMemJobStore() *memJobStore {
	return &memJobStore{rows: map[int64]*model.Job{}}
}

func (m *memJobStore) InsertJob(_ context.Context, j *model.Job) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.IsActive && row.JobID == j.JobID {
			return nil, repository.ErrDuplicate
		}
	}
	m.seq++
	cp := *j
	cp.ID = m.seq
	m.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memJobStore) GetActiveJob(_ context.Context, id int64) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || !row.IsActive {
		return nil, repository.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (m *memJobStore) UpdateJob(_ context.Context, id int64, j *model.Job) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || !row.IsActive {
		return nil, repository.ErrNotFound
	}
	row.EmployerName = j.EmployerName
	row.JobTitle = j.JobTitle
	row.JobDescription = j.JobDescription
	row.JobCountry = j.JobCountry
	row.JobCity = j.JobCity
	row.JobPostedAt = j.JobPostedAt
	row.JobApplyLink = j.JobApplyLink
	row.EmploymentType = j.EmploymentType
	row.UpdatedAt = j.UpdatedAt
	out := *row
	return &out, nil
}

func (m *memJobStore) SoftDeleteJob(_ context.Context, id int64, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || !row.IsActive {
		return repository.ErrNotFound
	}
	row.IsActive = false
	row.UpdatedAt = now
	return nil
}

func (m *memJobStore) RestoreJob(_ context.Context, id int64, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if row.IsActive {
		return repository.ErrAlreadyActive
	}
	row.IsActive = true
	row.UpdatedAt = now
	return nil
}

func (m *memJobStore) activeSorted(match func(*model.Job) bool) []model.Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Job
	for _, row := range m.rows {
		if row.IsActive && match(row) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memJobStore) ListActiveJobs(context.Context) ([]model.Job, error) {
	return m.activeSorted(func(*model.Job) bool { return true }), nil
}

func (m *memJobStore) FindJobsByTitle(_ context.Context, title string) ([]model.Job, error) {
	return m.activeSorted(func(j *model.Job) bool {
		return strings.Contains(strings.ToLower(j.JobTitle), strings.ToLower(title))
	}), nil
}

func (m *memJobStore) FindJobsByEmployer(_ context.Context, employer string) ([]model.Job, error) {
	return m.activeSorted(func(j *model.Job) bool {
		return strings.Contains(strings.ToLower(j.EmployerName), strings.ToLower(employer))
	}), nil
}

func (m *memJobStore) FindJobsByCountry(_ context.Context, country string) ([]model.Job, error) {
	return m.activeSorted(func(j *model.Job) bool {
		return strings.EqualFold(j.JobCountry, country)
	}), nil
}

func (m *memJobStore) FindJobsByCity(_ context.Context, city string) ([]model.Job, error) {
	return m.activeSorted(func(j *model.Job) bool {
		return strings.EqualFold(j.JobCity, city)
	}), nil
}

func (m *memJobStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memMovieStore struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]*model.Movie
}

func newMemMovieStore() *memMovieStore {
	return &memMovieStore{rows: map[int64]*model.Movie{}}
}

func (m *memMovieStore) InsertMovie(_ context.Context, mv *model.Movie) (*model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.IsActive && row.MovieID == mv.MovieID {
			return nil, repository.ErrDuplicate
		}
	}
	m.seq++
	cp := *mv
	cp.ID = m.seq
	m.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memMovieStore) GetActiveMovie(_ context.Context, id int64) (*model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || !row.IsActive {
		return nil, repository.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (m *memMovieStore) UpdateMovie(_ context.Context, id int64, mv *model.Movie) (*model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || !row.IsActive {
		return nil, repository.ErrNotFound
	}
	row.Title = mv.Title
	row.Overview = mv.Overview
	row.PosterPath = mv.PosterPath
	row.ReleaseDate = mv.ReleaseDate
	row.VoteAverage = mv.VoteAverage
	row.VoteCount = mv.VoteCount
	row.Popularity = mv.Popularity
	row.GenreIDs = mv.GenreIDs
	row.UpdatedAt = mv.UpdatedAt
	out := *row
	return &out, nil
}

func (m *memMovieStore) SoftDeleteMovie(_ context.Context, id int64, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || !row.IsActive {
		return repository.ErrNotFound
	}
	row.IsActive = false
	row.UpdatedAt = now
	return nil
}

func (m *memMovieStore) RestoreMovie(_ context.Context, id int64, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if row.IsActive {
		return repository.ErrAlreadyActive
	}
	row.IsActive = true
	row.UpdatedAt = now
	return nil
}

func (m *memMovieStore) filtered(match func(*model.Movie) bool) []model.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Movie
	for _, row := range m.rows {
		if match(row) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memMovieStore) ListActiveMovies(context.Context) ([]model.Movie, error) {
	return m.filtered(func(mv *model.Movie) bool { return mv.IsActive }), nil
}

func (m *memMovieStore) FindMoviesByTitle(_ context.Context, title string) ([]model.Movie, error) {
	return m.filtered(func(mv *model.Movie) bool {
		return mv.IsActive && strings.Contains(strings.ToLower(mv.Title), strings.ToLower(title))
	}), nil
}

func (m *memMovieStore) ListInactiveMovies(context.Context) ([]model.Movie, error) {
	return m.filtered(func(mv *model.Movie) bool { return !mv.IsActive }), nil
}

func (m *memMovieStore) GetInactiveMovie(_ context.Context, id int64) (*model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.IsActive {
		return nil, repository.ErrNotFound
	}
	out := *row
	return &out, nil
}

type memMP3Store struct {
	mu   sync.Mutex
	seq  int64
	rows []model.MP3
}

func (m *memMP3Store) InsertMP3(_ context.Context, rec *model.MP3) (*model.MP3, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	cp := *rec
	cp.ID = m.seq
	m.rows = append(m.rows, cp)
	out := cp
	return &out, nil
}

func (m *memMP3Store) ListMP3s(context.Context) ([]model.MP3, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.MP3, len(m.rows))
	copy(out, m.rows)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
