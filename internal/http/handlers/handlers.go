// Handler wiring.
//
// Handlers groups the HTTP endpoints for scenarios, reports, and interview
// sessions. It depends on abstract service interfaces to keep transport
// concerns separate from business logic; the concrete services are injected
// once at router construction (no ambient globals).
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anawat34115/police-care-backend/internal/repo"
)

// Handlers groups HTTP endpoints for scenarios, reports, and interviews.
type Handlers struct {
	scenarioSvc  ScenarioService
	reportSvc    ReportService
	interviewSvc InterviewService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(scenarioSvc ScenarioService, reportSvc ReportService, interviewSvc InterviewService) *Handlers {
	return &Handlers{
		scenarioSvc:  scenarioSvc,
		reportSvc:    reportSvc,
		interviewSvc: interviewSvc,
	}
}

// requestMeta captures the requester metadata recorded on audit entries.
func requestMeta(c *gin.Context) repo.RequestMeta {
	return repo.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
