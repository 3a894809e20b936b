package rapidapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rapidhub/rapidhub/pkg/apierror"
)

const resourceJobSearch = "JobSearch"

// JobSearchResponse is the JSearch /search payload.
type JobSearchResponse struct {
	Status    string    `json:"status"`
	Data      []JobData `json:"data"`
	Page      int       `json:"page"`
	NumPages  int       `json:"num_pages"`
	TotalJobs int       `json:"total_jobs"`
}

type JobData struct {
	JobID          string `json:"job_id"`
	EmployerName   string `json:"employer_name"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	JobCountry     string `json:"job_country"`
	JobCity        string `json:"job_city"`
	PostedAt       string `json:"job_posted_at_datetime_utc"`
	ApplyLink      string `json:"job_apply_link"`
	EmploymentType string `json:"job_employment_type"`
}

// Complete reports whether the entry carries every required field.
func (jd JobData) Complete() bool {
	return jd.JobID != "" && jd.EmployerName != "" && jd.JobTitle != ""
}

// SearchJobs queries the JSearch API. Empty result sets and non-OK upstream
// statuses surface as typed failures rather than empty slices.
func (c *Client) SearchJobs(ctx context.Context, query, country string, page, numPages int) (*JobSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", strconv.Itoa(numPages))
	params.Set("country", country)
	params.Set("date_posted", "all")

	cacheKey := "jobs:" + params.Encode()
	body, err := c.getJSON(ctx, resourceJobSearch, c.jsearchHost, "/search", params, cacheKey)
	if err != nil {
		return nil, err
	}

	var res JobSearchResponse
	if err := decode(resourceJobSearch, body, &res); err != nil {
		return nil, err
	}

	if res.Status != "" && res.Status != "OK" {
		return nil, apierror.New(resourceJobSearch, apierror.CodeProcessingError,
			fmt.Sprintf("upstream reported status %q", res.Status))
	}
	if len(res.Data) == 0 {
		return nil, apierror.New(resourceJobSearch, apierror.CodeNoResultsFound,
			fmt.Sprintf("no jobs found for query %q", query))
	}
	return &res, nil
}
