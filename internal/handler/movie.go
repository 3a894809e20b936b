package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rapidhub/rapidhub/pkg/model"
	"github.com/rapidhub/rapidhub/pkg/response"
)

func (h *Handler) CreateMovie(c *gin.Context) {
	var req model.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	movie, err := h.Movies.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Created(c, movie, "movie created successfully")
}

func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	movie, err := h.Movies.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, movie, "movie found")
}

func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	movie, err := h.Movies.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, movie, "movie updated successfully")
}

func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Movies.SoftDelete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.OKEmpty(c, "movie deleted successfully")
}

func (h *Handler) RestoreMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Movies.Restore(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.OKEmpty(c, "movie restored successfully")
}

func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.Movies.ListActive(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, movies, "movies fetched successfully")
}

func (h *Handler) SearchMoviesByTitle(c *gin.Context) {
	title, ok := requiredQuery(c, "title")
	if !ok {
		return
	}

	movies, err := h.Movies.FindByTitle(c.Request.Context(), title)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, movies, "search completed successfully")
}

func (h *Handler) ListDeletedMovies(c *gin.Context) {
	movies, err := h.Movies.ListDeleted(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, movies, "deleted movies fetched successfully")
}

func (h *Handler) GetDeletedMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	movie, err := h.Movies.GetDeletedByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, movie, "deleted movie found")
}

// SearchMoviesExternal ingests movies matching the title from the external
// movie API.
func (h *Handler) SearchMoviesExternal(c *gin.Context) {
	title, ok := requiredQuery(c, "title")
	if !ok {
		return
	}

	movies, err := h.Movies.SearchAndStore(c.Request.Context(), title)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, movies, "movies fetched and stored successfully")
}

// LookupMovieExternal resolves a single movie by exact title and stores it.
func (h *Handler) LookupMovieExternal(c *gin.Context) {
	title, ok := requiredQuery(c, "title")
	if !ok {
		return
	}

	movie, err := h.Movies.LookupAndStore(c.Request.Context(), title)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, movie, "movie fetched and stored successfully")
}
