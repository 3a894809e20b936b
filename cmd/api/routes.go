package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestIDMiddleware())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetString(requestIDKey),
			"duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())

	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	jobs := r.Group("/api/jobs")
	{
		jobs.POST("", app.Handler.CreateJob)
		jobs.GET("", app.Handler.ListJobs)
		jobs.GET("/search", app.Handler.SearchJobsExternal)
		jobs.GET("/search-by-title", app.Handler.SearchJobsByTitle)
		jobs.GET("/search-by-employer", app.Handler.SearchJobsByEmployer)
		jobs.GET("/search-by-country", app.Handler.SearchJobsByCountry)
		jobs.GET("/search-by-city", app.Handler.SearchJobsByCity)
		jobs.GET("/:id", app.Handler.GetJob)
		jobs.PUT("/:id", app.Handler.UpdateJob)
		jobs.DELETE("/:id", app.Handler.DeleteJob)
		jobs.PATCH("/:id/restore", app.Handler.RestoreJob)
	}

	movies := r.Group("/api/movies")
	{
		movies.POST("", app.Handler.CreateMovie)
		movies.GET("", app.Handler.ListMovies)
		movies.GET("/search", app.Handler.SearchMoviesExternal)
		movies.GET("/lookup", app.Handler.LookupMovieExternal)
		movies.GET("/search-by-title", app.Handler.SearchMoviesByTitle)
		movies.GET("/deleted", app.Handler.ListDeletedMovies)
		movies.GET("/deleted/:id", app.Handler.GetDeletedMovie)
		movies.GET("/:id", app.Handler.GetMovie)
		movies.PUT("/:id", app.Handler.UpdateMovie)
		movies.DELETE("/:id", app.Handler.DeleteMovie)
		movies.PATCH("/:id/restore", app.Handler.RestoreMovie)
	}

	// youtube routes exist only when the feature flag built the service
	if app.Handler.YouTube != nil {
		yt := r.Group("/api/youtube")
		{
			yt.GET("", app.Handler.ListMP3s)
			yt.GET("/download/:videoId", app.Handler.GetMP3Info)
			yt.GET("/download-file/:videoId", app.Handler.DownloadMP3File)
		}
	}

	return r
}
