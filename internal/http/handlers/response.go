// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// Every result, success or failure, is wrapped in a uniform envelope so the
// API stays predictable and machine-friendly:
//
// Success:
//
//	HTTP/1.1 200 OK
//	{
//	  "success": true,
//	  "timestamp": "2025-01-15 09:30:00",
//	  "data": { ... }
//	}
//
// Failure:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "success": false,
//	  "timestamp": "2025-01-15 09:30:00",
//	  "error": { "message": "report not found", "code": "not_found" }
//	}
//
// Conventions:
//   - All error responses carry a stable `code` (see errors.go constants).
//   - `fail()` centralizes error logging and formatting, ensuring 5xx responses
//     are logged with request context for observability.
//   - `ok()` and `paginated()` keep success shapes consistent across handlers.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anawat34115/police-care-backend/internal/http/middleware"
	"github.com/anawat34115/police-care-backend/internal/services"
)

// envelopeTimeFormat is the wall-clock format stamped on every envelope.
const envelopeTimeFormat = "2006-01-02 15:04:05"

// APIError is the error half of the response envelope.
type APIError struct {
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"report not found"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
}

// APIResponse is the uniform envelope returned by all endpoints.
//
// Exactly one of Data or Error is populated depending on Success. Pagination
// is attached only by list endpoints. This struct is used in OpenAPI
// documentation via Swagger annotations.
type APIResponse struct {
	Success    bool                 `json:"success"`
	Timestamp  string               `json:"timestamp" example:"2025-01-15 09:30:00"`
	Data       any                  `json:"data,omitempty"`
	Pagination *services.Pagination `json:"pagination,omitempty"`
	Error      *APIError            `json:"error,omitempty"`
}

// fail aborts the request with a structured error envelope and logs
// server-side errors.
//
// Server errors (>=500) are logged using the request-scoped logger from
// middleware; the caller-facing message stays generic for those so internal
// detail never leaks to clients.
func fail(c *gin.Context, status int, code, msg string) {
	resp := APIResponse{
		Success:   false,
		Timestamp: time.Now().UTC().Format(envelopeTimeFormat),
		Error:     &APIError{Message: msg, Code: code},
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success envelope with the given payload.
func ok(c *gin.Context, status int, data any) {
	c.JSON(status, APIResponse{
		Success:   true,
		Timestamp: time.Now().UTC().Format(envelopeTimeFormat),
		Data:      data,
	})
}

// paginated writes a success envelope with the payload and pagination block.
func paginated(c *gin.Context, status int, data any, p services.Pagination) {
	c.JSON(status, APIResponse{
		Success:    true,
		Timestamp:  time.Now().UTC().Format(envelopeTimeFormat),
		Data:       data,
		Pagination: &p,
	})
}
