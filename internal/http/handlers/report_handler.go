// Report HTTP handlers.
//
// This file exposes the report lifecycle REST endpoints:
//   - POST   /reports             (create draft report + answers)
//   - GET    /reports             (paginated summaries, optional status filter)
//   - GET    /reports/statistics  (aggregate counts)
//   - GET    /reports/{id}        (full report with answers)
//   - PUT    /reports/{id}        (partial patch, wholesale answer replacement)
//   - DELETE /reports/{id}        (remove report + answers)
//
// Error mapping follows a consistent taxonomy: malformed JSON is 400,
// semantic validation failures are 422, unknown ids are 404, and everything
// else is a 5xx with a domain-specific failure code.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anawat34115/police-care-backend/internal/domain"
	"github.com/anawat34115/police-care-backend/internal/http/middleware"
	"github.com/anawat34115/police-care-backend/internal/repo"
	"github.com/anawat34115/police-care-backend/internal/services"
	"github.com/anawat34115/police-care-backend/internal/utils"
)

// ReportService defines the report lifecycle operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use.
type ReportService interface {
	// Create persists a new draft report with its answers atomically.
	Create(ctx context.Context, in services.CreateReportInput, meta repo.RequestMeta) (*domain.Report, error)
	// Get returns one report with answers in insertion order.
	Get(ctx context.Context, reportID string) (*domain.Report, error)
	// ListPage returns a page of summaries plus the pagination envelope.
	ListPage(ctx context.Context, page, limit int, status string) ([]repo.ReportSummary, services.Pagination, error)
	// Update applies a partial patch in one transaction.
	Update(ctx context.Context, reportID string, in services.UpdateReportInput, meta repo.RequestMeta) (*domain.Report, error)
	// Delete removes the report and its answers.
	Delete(ctx context.Context, reportID string, meta repo.RequestMeta) error
	// Statistics returns aggregate report counts.
	Statistics(ctx context.Context) (*repo.Statistics, error)
}

// CreateReport godoc
// @ID          createReport
// @Summary     Create an incident report
// @Description Creates a draft report together with all of its answers in a
// @Description single transaction. Supports safe retries via the optional
// @Description Idempotency-Key header.
// @Tags        Reports
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string                       false  "Optional UUID to make the create retryable"
// @Param       payload          body    services.CreateReportInput   true   "Report payload"
//
// @Success     201  {object}  handlers.APIResponse{data=domain.Report}
// @Failure     400  {object}  handlers.APIResponse  "Malformed JSON"
// @Failure     422  {object}  handlers.APIResponse  "Validation failed"
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /reports [post]
func (h *Handlers) CreateReport(c *gin.Context) {
	var in services.CreateReportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	in.IdempotencyKey = middleware.GetIdempotencyKey(c)

	r, err := h.reportSvc.Create(c.Request.Context(), in, requestMeta(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "scenario_type and scenario_title are required")
		case errors.Is(err, services.ErrInvalidScenario):
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "unknown scenario_type")
		case errors.Is(err, services.ErrEmptyAnswers):
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "at least one answer is required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "failed to create report")
		}
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListReports godoc
// @ID          listReports
// @Summary     List report summaries
// @Description Returns report summaries newest-first with a pagination block.
// @Description An optional status filter narrows the listing.
// @Tags        Reports
// @Produce     json
//
// @Param       page    query  int     false  "Page number (1-based)"       default(1)
// @Param       limit   query  int     false  "Page size (max 100)"         default(10)
// @Param       status  query  string  false  "Filter by report status"     Enums(draft, submitted, reviewed, processing)
//
// @Success     200  {object}  handlers.APIResponse{data=[]repo.ReportSummary}
// @Failure     422  {object}  handlers.APIResponse  "Unknown status filter"
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /reports [get]
func (h *Handlers) ListReports(c *gin.Context) {
	page := utils.AtoiDefault(c.Query("page"), 1)
	limit := utils.AtoiDefault(c.Query("limit"), 10)
	status := c.Query("status")

	items, p, err := h.reportSvc.ListPage(c.Request.Context(), page, limit, status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "unknown status filter")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list reports")
		return
	}
	paginated(c, http.StatusOK, items, p)
}

// GetStatistics godoc
// @ID          getReportStatistics
// @Summary     Report statistics
// @Description Returns aggregate report counts: overall total, today's total,
// @Description and a per-status breakdown.
// @Tags        Reports
// @Produce     json
//
// @Success     200  {object}  handlers.APIResponse{data=repo.Statistics}
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /reports/statistics [get]
func (h *Handlers) GetStatistics(c *gin.Context) {
	stats, err := h.reportSvc.Statistics(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to compute statistics")
		return
	}
	ok(c, http.StatusOK, stats)
}

// GetReport godoc
// @ID          getReport
// @Summary     Get a report
// @Description Returns the full report including its answers in the order
// @Description they were originally recorded.
// @Tags        Reports
// @Produce     json
//
// @Param       id  path  string  true  "Report ID"  example(RPT20250115A1B2C3D4E5F6)
//
// @Success     200  {object}  handlers.APIResponse{data=domain.Report}
// @Failure     404  {object}  handlers.APIResponse  "Report not found"
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /reports/{id} [get]
func (h *Handlers) GetReport(c *gin.Context) {
	r, err := h.reportSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to load report")
		return
	}
	ok(c, http.StatusOK, r)
}

// UpdateReport godoc
// @ID          updateReport
// @Summary     Update a report
// @Description Applies a partial patch: status (stamping submitted_at on the
// @Description first transition to "submitted"), user_info, location, and/or a
// @Description wholesale replacement of the answer set. All changes commit
// @Description atomically.
// @Tags        Reports
// @Accept      json
// @Produce     json
//
// @Param       id       path  string                      true  "Report ID"
// @Param       payload  body  services.UpdateReportInput  true  "Partial patch"
//
// @Success     200  {object}  handlers.APIResponse{data=domain.Report}
// @Failure     400  {object}  handlers.APIResponse  "Malformed JSON or empty patch"
// @Failure     404  {object}  handlers.APIResponse  "Report not found"
// @Failure     422  {object}  handlers.APIResponse  "Validation failed"
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /reports/{id} [put]
func (h *Handlers) UpdateReport(c *gin.Context) {
	var in services.UpdateReportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.reportSvc.Update(c.Request.Context(), c.Param("id"), in, requestMeta(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyPatch):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no updatable fields in request")
		case errors.Is(err, services.ErrInvalidStatus):
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "unknown status value")
		case errors.Is(err, services.ErrEmptyAnswers):
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "answers must not be empty when provided")
		case errors.Is(err, services.ErrReportNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, "failed to update report")
		}
		return
	}
	ok(c, http.StatusOK, r)
}

// DeleteReport godoc
// @ID          deleteReport
// @Summary     Delete a report
// @Description Removes the report and its answers. The audit trail entry for
// @Description the deletion is retained.
// @Tags        Reports
// @Produce     json
//
// @Param       id  path  string  true  "Report ID"
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     404  {object}  handlers.APIResponse  "Report not found"
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /reports/{id} [delete]
func (h *Handlers) DeleteReport(c *gin.Context) {
	err := h.reportSvc.Delete(c.Request.Context(), c.Param("id"), requestMeta(c))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, "failed to delete report")
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
