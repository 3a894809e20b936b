package service

import (
	"context"
	"sync"
	"time"

	"github.com/rapidhub/rapidhub/internal/rapidapi"
	"github.com/rapidhub/rapidhub/pkg/apierror"
	"github.com/rapidhub/rapidhub/pkg/model"
	"go.uber.org/zap"
)

const resourceJob = "Job"

// JobStore is the persistence surface the job service needs.
type JobStore interface {
	InsertJob(ctx context.Context, j *model.Job) (*model.Job, error)
	GetActiveJob(ctx context.Context, id int64) (*model.Job, error)
	UpdateJob(ctx context.Context, id int64, j *model.Job) (*model.Job, error)
	SoftDeleteJob(ctx context.Context, id int64, now time.Time) error
	RestoreJob(ctx context.Context, id int64, now time.Time) error
	ListActiveJobs(ctx context.Context) ([]model.Job, error)
	FindJobsByTitle(ctx context.Context, title string) ([]model.Job, error)
	FindJobsByEmployer(ctx context.Context, employer string) ([]model.Job, error)
	FindJobsByCountry(ctx context.Context, country string) ([]model.Job, error)
	FindJobsByCity(ctx context.Context, city string) ([]model.Job, error)
}

// JobSearcher is the slice of the RapidAPI client the job service uses.
type JobSearcher interface {
	SearchJobs(ctx context.Context, query, country string, page, numPages int) (*rapidapi.JobSearchResponse, error)
}

type JobService struct {
	store  JobStore
	client JobSearcher
	logger *zap.Logger
}

func NewJobService(store JobStore, client JobSearcher, logger *zap.Logger) *JobService {
	return &JobService{store: store, client: client, logger: logger}
}

// Create persists a new job. An active row with the same external job_id
// fails with DUPLICATE_ID; the store enforces this atomically.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	now := time.Now()
	job := &model.Job{
		JobID:          req.JobID,
		EmployerName:   req.EmployerName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		JobCountry:     req.JobCountry,
		JobCity:        req.JobCity,
		JobPostedAt:    req.JobPostedAt,
		JobApplyLink:   req.JobApplyLink,
		EmploymentType: req.EmploymentType,
		SearchDate:     now.Format(time.RFC3339),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	saved, err := s.store.InsertJob(ctx, job)
	if err != nil {
		return nil, storeError(resourceJob, err)
	}
	return saved, nil
}

func (s *JobService) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	job, err := s.store.GetActiveJob(ctx, id)
	if err != nil {
		return nil, storeError(resourceJob, err)
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, id int64, req *model.UpdateJobRequest) (*model.Job, error) {
	job := &model.Job{
		EmployerName:   req.EmployerName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		JobCountry:     req.JobCountry,
		JobCity:        req.JobCity,
		JobPostedAt:    req.JobPostedAt,
		JobApplyLink:   req.JobApplyLink,
		EmploymentType: req.EmploymentType,
		UpdatedAt:      time.Now(),
	}

	saved, err := s.store.UpdateJob(ctx, id, job)
	if err != nil {
		return nil, storeError(resourceJob, err)
	}
	return saved, nil
}

func (s *JobService) SoftDelete(ctx context.Context, id int64) error {
	if err := s.store.SoftDeleteJob(ctx, id, time.Now()); err != nil {
		return storeError(resourceJob, err)
	}
	return nil
}

func (s *JobService) Restore(ctx context.Context, id int64) error {
	if err := s.store.RestoreJob(ctx, id, time.Now()); err != nil {
		return storeError(resourceJob, err)
	}
	return nil
}

func (s *JobService) ListActive(ctx context.Context) ([]model.Job, error) {
	return s.store.ListActiveJobs(ctx)
}

func (s *JobService) FindByTitle(ctx context.Context, title string) ([]model.Job, error) {
	return s.store.FindJobsByTitle(ctx, title)
}

func (s *JobService) FindByEmployer(ctx context.Context, employer string) ([]model.Job, error) {
	return s.store.FindJobsByEmployer(ctx, employer)
}

func (s *JobService) FindByCountry(ctx context.Context, country string) ([]model.Job, error) {
	return s.store.FindJobsByCountry(ctx, country)
}

func (s *JobService) FindByCity(ctx context.Context, city string) ([]model.Job, error) {
	return s.store.FindJobsByCity(ctx, city)
}

// SearchAndStore queries the JSearch API and persists every complete entry.
// A batch where every entry is missing a required field fails with
// INCOMPLETE_DATA and writes nothing; individual incomplete entries within
// an otherwise valid batch are skipped. Entries whose job_id already has an
// active row are skipped as well, so repeating a search does not fail on
// its own earlier results.
func (s *JobService) SearchAndStore(ctx context.Context, query, country string, page, numPages int) ([]model.Job, error) {
	resp, err := s.client.SearchJobs(ctx, query, country, page, numPages)
	if err != nil {
		return nil, err
	}

	complete := make([]rapidapi.JobData, 0, len(resp.Data))
	for _, jd := range resp.Data {
		if !jd.Complete() {
			s.logger.Warn("skipping incomplete job entry", zap.String("job_id", jd.JobID), zap.String("query", query))
			continue
		}
		complete = append(complete, jd)
	}
	if len(complete) == 0 {
		return nil, apierror.New(resourceJob, apierror.CodeIncompleteData,
			"external response contains incomplete data for every entry")
	}

	searchDate := time.Now().Format(time.RFC3339)

	// Saves run concurrently; the batch is not transactional, so a failure
	// mid-batch leaves earlier rows committed.
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		saved    []model.Job
		firstErr error
	)
	for _, jd := range complete {
		wg.Add(1)
		go func(jd rapidapi.JobData) {
			defer wg.Done()
			now := time.Now()
			job := &model.Job{
				JobID:          jd.JobID,
				EmployerName:   jd.EmployerName,
				JobTitle:       jd.JobTitle,
				JobDescription: jd.JobDescription,
				JobCountry:     jd.JobCountry,
				JobCity:        jd.JobCity,
				JobPostedAt:    jd.PostedAt,
				JobApplyLink:   jd.ApplyLink,
				EmploymentType: jd.EmploymentType,
				SearchDate:     searchDate,
				IsActive:       true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			row, err := s.store.InsertJob(ctx, job)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if apierror.Is(storeError(resourceJob, err), apierror.CodeDuplicateID) {
					s.logger.Debug("job already stored, skipping", zap.String("job_id", jd.JobID))
					return
				}
				if firstErr == nil {
					firstErr = storeError(resourceJob, err)
				}
				return
			}
			saved = append(saved, *row)
		}(jd)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return saved, nil
}
