// Interview HTTP handlers.
//
// Endpoints for the client-driven interview walk-through:
//   - POST /interview/start   (allocate a correlation session id)
//   - PUT  /interview/answer  (best-effort answer telemetry echo)
//   - GET  /interview/{id}    (static session echo)
//
// Interview sessions hold no server-side state. The report submitted at the
// end of the walk-through (POST /reports) is the only authoritative record.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anawat34115/police-care-backend/internal/services"
)

// InterviewService defines the interview session operations consumed by HTTP
// handlers.
type InterviewService interface {
	// StartSession allocates a fresh correlation id for a scenario.
	StartSession(scenarioType string) (*services.InterviewSession, error)
	// RecordAnswer acknowledges one answer telemetry record.
	RecordAnswer(in services.InterviewAnswerInput) (*services.InterviewAnswerEcho, error)
}

// startInterviewRequest is the payload for POST /interview/start.
type startInterviewRequest struct {
	ScenarioType string `json:"scenario_type"`
}

// StartInterview godoc
// @ID          startInterview
// @Summary     Start an interview session
// @Description Allocates a correlation id for a question-by-question interview
// @Description walk-through. No server-side state is created.
// @Tags        Interview
// @Accept      json
// @Produce     json
//
// @Param       payload  body  handlers.startInterviewRequest  true  "Scenario to interview for"
//
// @Success     200  {object}  handlers.APIResponse{data=services.InterviewSession}
// @Failure     400  {object}  handlers.APIResponse  "Malformed JSON"
// @Failure     422  {object}  handlers.APIResponse  "Validation failed"
// @Router      /interview/start [post]
func (h *Handlers) StartInterview(c *gin.Context) {
	var req startInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	sess, err := h.interviewSvc.StartSession(req.ScenarioType)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "scenario_type must be a known incident category")
		return
	}
	ok(c, http.StatusOK, sess)
}

// InterviewAnswer godoc
// @ID          interviewAnswer
// @Summary     Record an interview answer
// @Description Acknowledges one answer within an interview session. The call
// @Description is best-effort telemetry: nothing is persisted, and clients
// @Description must not block question progression on its outcome.
// @Tags        Interview
// @Accept      json
// @Produce     json
//
// @Param       payload  body  services.InterviewAnswerInput  true  "Answer telemetry"
//
// @Success     200  {object}  handlers.APIResponse{data=services.InterviewAnswerEcho}
// @Failure     400  {object}  handlers.APIResponse  "Malformed JSON"
// @Failure     422  {object}  handlers.APIResponse  "Validation failed"
// @Router      /interview/answer [put]
func (h *Handlers) InterviewAnswer(c *gin.Context) {
	var in services.InterviewAnswerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	echo, err := h.interviewSvc.RecordAnswer(in)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "session_id and question_id are required")
		return
	}
	ok(c, http.StatusOK, echo)
}

// GetInterview godoc
// @ID          getInterview
// @Summary     Echo an interview session id
// @Description Returns a static acknowledgment for the given session id.
// @Description Sessions are client-held, so there is no stored state to
// @Description return; the endpoint exists for client connectivity checks.
// @Tags        Interview
// @Produce     json
//
// @Param       id  path  string  true  "Interview session ID"
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     422  {object}  handlers.APIResponse  "Blank session id"
// @Router      /interview/{id} [get]
func (h *Handlers) GetInterview(c *gin.Context) {
	id := c.Param("id")
	if strings.TrimSpace(id) == "" {
		fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "session id must not be blank")
		return
	}
	ok(c, http.StatusOK, gin.H{
		"session_id": id,
		"status":     "active",
		"note":       "interview sessions are held client-side",
	})
}
