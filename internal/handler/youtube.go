package handler

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rapidhub/rapidhub/pkg/apierror"
	"github.com/rapidhub/rapidhub/pkg/model"
	"github.com/rapidhub/rapidhub/pkg/response"
	"go.uber.org/zap"
)

func validateDownloadParams(c *gin.Context) (videoID, quality string, ok bool) {
	videoID = strings.TrimSpace(c.Param("videoId"))
	quality = c.DefaultQuery("quality", model.QualityLow)

	if videoID == "" {
		response.BadRequest(c, errorMessages[apierror.CodeInvalidVideoID])
		return "", "", false
	}
	if !model.ValidQuality(quality) {
		response.BadRequest(c, errorMessages[apierror.CodeInvalidQuality])
		return "", "", false
	}
	return videoID, quality, true
}

// GetMP3Info fetches video metadata and stores an MP3 record.
func (h *Handler) GetMP3Info(c *gin.Context) {
	videoID, quality, ok := validateDownloadParams(c)
	if !ok {
		return
	}

	record, err := h.YouTube.FetchInfo(c.Request.Context(), videoID, quality)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, record, "mp3 info fetched successfully")
}

func (h *Handler) ListMP3s(c *gin.Context) {
	records, err := h.YouTube.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OKList(c, records, "mp3 list fetched successfully")
}

// DownloadMP3File streams the audio bytes to the client. Metadata is
// persisted before the stream is requested; failures before the first byte
// use the envelope, failures mid-stream can only be logged and aborted.
func (h *Handler) DownloadMP3File(c *gin.Context) {
	videoID, quality, ok := validateDownloadParams(c)
	if !ok {
		return
	}

	_, stream, err := h.YouTube.Download(c.Request.Context(), videoID, quality)
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "youtube_"+videoID+".mp3"))
	c.Header("Content-Type", "application/octet-stream")
	c.Status(200)

	if _, err := io.Copy(c.Writer, stream); err != nil {
		h.Logger.Error("mp3 stream interrupted",
			zap.String("video_id", videoID),
			zap.Error(err))
		c.Abort()
	}
}
