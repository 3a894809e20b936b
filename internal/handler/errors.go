package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rapidhub/rapidhub/pkg/apierror"
	"github.com/rapidhub/rapidhub/pkg/response"
	"go.uber.org/zap"
)

// User-facing messages per error code. Codes missing here fall back to the
// error's own message, and non-typed errors to a generic one.
var errorMessages = map[string]string{
	apierror.CodeDuplicateID:       "a record with this external id already exists",
	apierror.CodeAlreadyActive:     "the record is already active",
	apierror.CodeNullResponse:      "the external API did not return a valid response, please try again later",
	apierror.CodeEmptyResponse:     "the external API returned a successful response with no data",
	apierror.CodeNoResultsFound:    "no results were found for the given search",
	apierror.CodeIncompleteData:    "the external API returned incomplete data, please try a different search",
	apierror.CodeDataFormatError:   "the external API response had an unexpected format, please try again later",
	apierror.CodeResourceNotFound:  "the requested resource was not found in the external API",
	apierror.CodeRateLimitExceeded: "the external API request limit has been exceeded, please try again later",
	apierror.CodeUnauthorized:      "authentication with the external API failed",
	apierror.CodeBadRequest:        "the external API rejected the request",
	apierror.CodeTimeout:           "the external API took too long to respond, please try again later",
	apierror.CodeDownloadError:     "the file could not be downloaded, please verify the video id",
	apierror.CodeInvalidVideoID:    "the video id must not be empty",
	apierror.CodeInvalidQuality:    "quality must be one of 'low', 'medium' or 'high'",
}

// respondError converts any service failure into the uniform envelope:
// NOT_FOUND becomes 404, every other code 400. Nothing propagates as 500;
// all failures are recovered into a response.
func (h *Handler) respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		h.Logger.Error("unexpected error", zap.Error(err))
		response.BadRequest(c, "the request could not be processed, please try again later")
		return
	}

	h.Logger.Warn("request failed",
		zap.String("resource", apiErr.Resource),
		zap.String("code", apiErr.Code),
		zap.Error(err))

	msg := apiErr.Message
	if m, ok := errorMessages[apiErr.Code]; ok {
		msg = m
	}

	if apiErr.Code == apierror.CodeNotFound {
		response.NotFound(c, msg)
		return
	}
	response.BadRequest(c, msg)
}
