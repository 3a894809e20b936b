package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rapidhub/rapidhub/pkg/model"
	"github.com/rapidhub/rapidhub/pkg/response"
)

func (h *Handler) CreateJob(c *gin.Context) {
	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Created(c, job, "job created successfully")
}

func (h *Handler) GetJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, job, "job found")
}

func (h *Handler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	job, err := h.Jobs.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, job, "job updated successfully")
}

func (h *Handler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Jobs.SoftDelete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.OKEmpty(c, "job deleted successfully")
}

func (h *Handler) RestoreJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Jobs.Restore(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.OKEmpty(c, "job restored successfully")
}

func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListActive(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, jobs, "jobs fetched successfully")
}

// requiredQuery fetches a query parameter, replying 400 when it is missing
// or blank.
func requiredQuery(c *gin.Context, name string) (string, bool) {
	val := strings.TrimSpace(c.Query(name))
	if val == "" {
		response.BadRequest(c, name+" must not be empty")
		return "", false
	}
	return val, true
}

func (h *Handler) SearchJobsByTitle(c *gin.Context) {
	title, ok := requiredQuery(c, "title")
	if !ok {
		return
	}

	jobs, err := h.Jobs.FindByTitle(c.Request.Context(), title)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, jobs, "search completed successfully")
}

func (h *Handler) SearchJobsByEmployer(c *gin.Context) {
	employer, ok := requiredQuery(c, "employer")
	if !ok {
		return
	}

	jobs, err := h.Jobs.FindByEmployer(c.Request.Context(), employer)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, jobs, "search completed successfully")
}

func (h *Handler) SearchJobsByCountry(c *gin.Context) {
	country, ok := requiredQuery(c, "country")
	if !ok {
		return
	}

	jobs, err := h.Jobs.FindByCountry(c.Request.Context(), country)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, jobs, "search completed successfully")
}

func (h *Handler) SearchJobsByCity(c *gin.Context) {
	city, ok := requiredQuery(c, "city")
	if !ok {
		return
	}

	jobs, err := h.Jobs.FindByCity(c.Request.Context(), city)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, jobs, "search completed successfully")
}

// SearchJobsExternal ingests jobs from the JSearch API into the store.
func (h *Handler) SearchJobsExternal(c *gin.Context) {
	var q model.JobSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid search parameters: "+err.Error())
		return
	}

	jobs, err := h.Jobs.SearchAndStore(c.Request.Context(), q.Query, q.Country, q.Page, q.NumPages)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, jobs, "jobs fetched and stored successfully")
}
