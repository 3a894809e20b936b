package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rapidhub/rapidhub/internal/rapidapi"
	"github.com/rapidhub/rapidhub/internal/repository"
	"github.com/rapidhub/rapidhub/internal/service"
	"github.com/rapidhub/rapidhub/pkg/model"
	"github.com/rapidhub/rapidhub/pkg/response"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeJobStore mirrors the database semantics: at most one active row per
// job_id, sentinel errors on misses and duplicates.
type fakeJobStore struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]*model.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{rows: make(map[int64]*model.Job)}
}

func (f *fakeJobStore) InsertJob(_ context.Context, j *model.Job) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.IsActive && row.JobID == j.JobID {
			return nil, repository.ErrDuplicate
		}
	}
	f.seq++
	cp := *j
	cp.ID = f.seq
	f.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeJobStore) GetActiveJob(_ context.Context, id int64) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || !row.IsActive {
		return nil, repository.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (f *fakeJobStore) UpdateJob(_ context.Context, id int64, j *model.Job) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
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

func (f *fakeJobStore) SoftDeleteJob(_ context.Context, id int64, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || !row.IsActive {
		return repository.ErrNotFound
	}
	row.IsActive = false
	row.UpdatedAt = now
	return nil
}

func (f *fakeJobStore) RestoreJob(_ context.Context, id int64, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
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

func (f *fakeJobStore) ListActiveJobs(context.Context) ([]model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Job
	for _, row := range f.rows {
		if row.IsActive {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeJobStore) filter(keep func(*model.Job) bool) []model.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Job
	for _, row := range f.rows {
		if row.IsActive && keep(row) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeJobStore) FindJobsByTitle(_ context.Context, title string) ([]model.Job, error) {
	return f.filter(func(j *model.Job) bool {
		return strings.Contains(strings.ToLower(j.JobTitle), strings.ToLower(title))
	}), nil
}

func (f *fakeJobStore) FindJobsByEmployer(_ context.Context, employer string) ([]model.Job, error) {
	return f.filter(func(j *model.Job) bool {
		return strings.Contains(strings.ToLower(j.EmployerName), strings.ToLower(employer))
	}), nil
}

func (f *fakeJobStore) FindJobsByCountry(_ context.Context, country string) ([]model.Job, error) {
	return f.filter(func(j *model.Job) bool {
		return strings.EqualFold(j.JobCountry, country)
	}), nil
}

func (f *fakeJobStore) FindJobsByCity(_ context.Context, city string) ([]model.Job, error) {
	return f.filter(func(j *model.Job) bool {
		return strings.EqualFold(j.JobCity, city)
	}), nil
}

type fakeJobSearcher struct {
	resp *rapidapi.JobSearchResponse
	err  error
}

func (f *fakeJobSearcher) SearchJobs(context.Context, string, string, int, int) (*rapidapi.JobSearchResponse, error) {
	return f.resp, f.err
}

type fakeMP3Store struct {
	mu   sync.Mutex
	seq  int64
	rows []model.MP3
}

func (f *fakeMP3Store) InsertMP3(_ context.Context, rec *model.MP3) (*model.MP3, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	cp := *rec
	cp.ID = f.seq
	f.rows = append(f.rows, cp)
	out := cp
	return &out, nil
}

func (f *fakeMP3Store) ListMP3s(context.Context) ([]model.MP3, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.MP3, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

type fakeMediaClient struct {
	details     *rapidapi.VideoDetailsResponse
	detailsErr  error
	stream      io.ReadCloser
	streamErr   error
	streamCalls int
}

func (f *fakeMediaClient) VideoDetails(context.Context, string) (*rapidapi.VideoDetailsResponse, error) {
	return f.details, f.detailsErr
}

func (f *fakeMediaClient) DownloadAudio(context.Context, string, string) (io.ReadCloser, error) {
	f.streamCalls++
	return f.stream, f.streamErr
}

type testApp struct {
	router  *gin.Engine
	handler *Handler
	jobs    *fakeJobStore
	mp3s    *fakeMP3Store
	media   *fakeMediaClient
}

// newTestApp wires handlers onto the route tree the real server uses.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zap.NewNop()
	jobs := newFakeJobStore()
	mp3s := &fakeMP3Store{}
	media := &fakeMediaClient{}

	h := &Handler{
		Logger:  logger,
		Jobs:    service.NewJobService(jobs, &fakeJobSearcher{}, logger),
		YouTube: service.NewYouTubeService(mp3s, media, logger),
	}

	router := gin.New()
	jobGroup := router.Group("/api/jobs")
	{
		jobGroup.POST("", h.CreateJob)
		jobGroup.GET("", h.ListJobs)
		jobGroup.GET("/search-by-title", h.SearchJobsByTitle)
		jobGroup.GET("/search-by-employer", h.SearchJobsByEmployer)
		jobGroup.GET("/:id", h.GetJob)
		jobGroup.PUT("/:id", h.UpdateJob)
		jobGroup.DELETE("/:id", h.DeleteJob)
		jobGroup.PATCH("/:id/restore", h.RestoreJob)
	}
	ytGroup := router.Group("/api/youtube")
	{
		ytGroup.GET("", h.ListMP3s)
		ytGroup.GET("/download/:videoId", h.GetMP3Info)
		ytGroup.GET("/download-file/:videoId", h.DownloadMP3File)
	}

	return &testApp{router: router, handler: h, jobs: jobs, mp3s: mp3s, media: media}
}

func (a *testApp) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
