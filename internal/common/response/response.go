package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

// Envelope is the JSON body returned by every endpoint.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes a 200 response.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// BadRequest writes a 400 validation response.
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, string(domain.KindValidation), message)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string) {
	abort(c, http.StatusUnauthorized, string(domain.KindUnauthorized), message)
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context, message string) {
	abort(c, http.StatusForbidden, "forbidden", message)
}

// Error maps err to a status code by its domain kind. Unclassified errors are 500s
// and their message is not exposed.
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, nil)
}

// ErrorWithData is Error with a data payload alongside the error body.
func ErrorWithData(c *gin.Context, err error, data any) {
	kind, ok := domain.KindOf(err)
	if !ok {
		abortWithData(c, http.StatusInternalServerError, "internal_error", "internal server error", data)
		return
	}
	abortWithData(c, statusFor(kind), string(kind), err.Error(), data)
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindInvalidState:
		return http.StatusConflict
	case domain.KindSchemaMissing:
		return http.StatusServiceUnavailable
	case domain.KindCollaborator:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, status int, code, message string) {
	abortWithData(c, status, code, message, nil)
}

func abortWithData(c *gin.Context, status int, code, message string, data any) {
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Data:    data,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}
