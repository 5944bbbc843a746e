// Scenario HTTP handlers.
//
// This file exposes the read-only REST endpoints for incident scenarios:
//   - GET /scenarios        (list active scenarios)
//   - GET /scenarios/{key}  (scenario + ordered questions)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into the uniform response envelope.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anawat34115/police-care-backend/internal/domain"
	"github.com/anawat34115/police-care-backend/internal/services"
)

// ScenarioService defines the scenario lookups consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ScenarioService interface {
	// List returns all active scenarios in insertion order.
	List(ctx context.Context) ([]domain.Scenario, error)
	// Get returns one active scenario with its ordered questions.
	Get(ctx context.Context, key string) (*domain.Scenario, error)
}

// ListScenarios godoc
// @ID          listScenarios
// @Summary     List incident scenarios
// @Description Returns all active incident categories in insertion order.
// @Tags        Scenarios
// @Produce     json
//
// @Success     200  {object}  handlers.APIResponse{data=[]domain.Scenario}
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /scenarios [get]
func (h *Handlers) ListScenarios(c *gin.Context) {
	scenarios, err := h.scenarioSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list scenarios")
		return
	}
	ok(c, http.StatusOK, scenarios)
}

// GetScenario godoc
// @ID          getScenario
// @Summary     Get a scenario with its questions
// @Description Returns the active scenario for the given key together with its
// @Description active questions ordered by question number.
// @Tags        Scenarios
// @Produce     json
//
// @Param       key  path  string  true  "Scenario key"  example(theft)
//
// @Success     200  {object}  handlers.APIResponse{data=domain.Scenario}
// @Failure     404  {object}  handlers.APIResponse  "Scenario not found"
// @Failure     500  {object}  handlers.APIResponse  "Internal error"
// @Router      /scenarios/{key} [get]
func (h *Handlers) GetScenario(c *gin.Context) {
	sc, err := h.scenarioSvc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, services.ErrScenarioNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "scenario not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to load scenario")
		return
	}
	ok(c, http.StatusOK, sc)
}
