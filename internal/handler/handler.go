package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rapidhub/rapidhub/internal/service"
	"github.com/rapidhub/rapidhub/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	Logger  *zap.Logger
	Jobs    *service.JobService
	Movies  *service.MovieService
	YouTube *service.YouTubeService
}

// pathID parses the numeric :id path parameter, replying 400 itself on bad
// input. The bool result reports whether the caller should proceed.
func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid id: "+raw)
		return 0, false
	}
	return id, true
}
