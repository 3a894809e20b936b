package model

import "time"

// Job is a stored job posting, either created directly or ingested from the
// JSearch API. JobID is the upstream identifier; at most one active row per
// JobID exists at a time.
type Job struct {
	ID             int64     `json:"id"`
	JobID          string    `json:"job_id"`
	EmployerName   string    `json:"employer_name"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	JobCountry     string    `json:"job_country"`
	JobCity        string    `json:"job_city"`
	JobPostedAt    string    `json:"job_posted_at"`
	JobApplyLink   string    `json:"job_apply_link"`
	EmploymentType string    `json:"job_employment_type"`
	SearchDate     string    `json:"search_date"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateJobRequest struct {
	JobID          string `json:"job_id" binding:"required"`
	EmployerName   string `json:"employer_name" binding:"required"`
	JobTitle       string `json:"job_title" binding:"required"`
	JobDescription string `json:"job_description"`
	JobCountry     string `json:"job_country"`
	JobCity        string `json:"job_city"`
	JobPostedAt    string `json:"job_posted_at"`
	JobApplyLink   string `json:"job_apply_link"`
	EmploymentType string `json:"job_employment_type"`
}

type UpdateJobRequest struct {
	EmployerName   string `json:"employer_name" binding:"required"`
	JobTitle       string `json:"job_title" binding:"required"`
	JobDescription string `json:"job_description"`
	JobCountry     string `json:"job_country"`
	JobCity        string `json:"job_city"`
	JobPostedAt    string `json:"job_posted_at"`
	JobApplyLink   string `json:"job_apply_link"`
	EmploymentType string `json:"job_employment_type"`
}

type JobSearchQuery struct {
	Query    string `form:"query" binding:"required"`
	Country  string `form:"country,default=us"`
	Page     int    `form:"page,default=1"`
	NumPages int    `form:"num_pages,default=1"`
}
