package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope wraps all API responses in a consistent structure
type Envelope struct {
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
	HasData   bool        `json:"hasData"`
}

func success(data interface{}, message string) Envelope {
	return Envelope{
		Status:    "success",
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
		HasData:   data != nil,
	}
}

// OK sends a 200 response with data
func OK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, success(data, message))
}

// OKEmpty sends a 200 response that carries no payload, only a message
func OKEmpty(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{
		Status:    "success",
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// OKList sends a 200 response with a collection; HasData reflects whether
// the collection is non-empty
func OKList[T any](c *gin.Context, items []T, message string) {
	if items == nil {
		items = []T{}
	}
	env := success(items, message)
	env.HasData = len(items) > 0
	c.JSON(http.StatusOK, env)
}

// Created sends a 201 response for successfully created resources
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, success(data, message))
}

// Error sends an error envelope with the given HTTP status
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Status:    "error",
		Message:   message,
		Data:      nil,
		Timestamp: time.Now().Format(time.RFC3339),
		HasData:   false,
	})
}

// BadRequest sends a 400 error envelope
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 error envelope
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

// TooManyRequests sends a 429 error envelope
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "rate limit exceeded, please try again later"
	}
	Error(c, http.StatusTooManyRequests, message)
}
