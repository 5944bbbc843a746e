// Package services – InterviewService
//
// This file implements the InterviewService, the server side of the
// client-held interview session. Sessions are a correlation construct only:
// the server allocates an opaque session id and echoes per-question answer
// telemetry, but persists nothing. Only the final report submission is
// authoritative (see ReportService.Create).
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/anawat34115/police-care-backend/internal/validate"
)

// InterviewSession is the correlation context returned when a client starts
// an interview walk-through. It is never stored server-side.
type InterviewSession struct {
	SessionID    string `json:"session_id"`
	ScenarioType string `json:"scenario_type"`
	StartedAt    string `json:"started_at"`
	Status       string `json:"status"`
}

// InterviewAnswerInput is one best-effort answer telemetry record.
type InterviewAnswerInput struct {
	SessionID  string `json:"session_id"`
	QuestionID int    `json:"question_id"`
	Answer     bool   `json:"answer"`
}

// InterviewAnswerEcho is the acknowledged telemetry record, with the answer
// label derived server-side.
type InterviewAnswerEcho struct {
	SessionID  string `json:"session_id"`
	QuestionID int    `json:"question_id"`
	Answer     bool   `json:"answer"`
	AnswerText string `json:"answer_text"`
	Timestamp  string `json:"timestamp"`
}

// InterviewService allocates session ids and acknowledges answer telemetry.
type InterviewService struct {
	// Locale selects the language of derived answer labels.
	Locale language.Tag
}

// sessionTimeFormat mirrors the timestamp format used across the API
// envelope.
const sessionTimeFormat = "2006-01-02 15:04:05"

// StartSession allocates a fresh correlation id for an interview walk-through
// of the given scenario. The session is logical: no server-side state is
// created. Returns ErrInvalidScenario for unknown categories and
// ErrMissingField when the scenario type is blank.
func (s *InterviewService) StartSession(scenarioType string) (*InterviewSession, error) {
	if strings.TrimSpace(scenarioType) == "" {
		return nil, ErrMissingField
	}
	if !validate.ScenarioType(scenarioType) {
		return nil, ErrInvalidScenario
	}
	return &InterviewSession{
		SessionID:    "interview_" + uuid.NewString(),
		ScenarioType: scenarioType,
		StartedAt:    time.Now().UTC().Format(sessionTimeFormat),
		Status:       "active",
	}, nil
}

// RecordAnswer acknowledges one answer telemetry record. Nothing is
// persisted; the call derives the localized answer label and timestamps the
// echo so clients can display a consistent trail. Telemetry is best-effort
// by contract: clients must not block question progression on its outcome.
func (s *InterviewService) RecordAnswer(in InterviewAnswerInput) (*InterviewAnswerEcho, error) {
	if strings.TrimSpace(in.SessionID) == "" || in.QuestionID == 0 {
		return nil, ErrMissingField
	}
	return &InterviewAnswerEcho{
		SessionID:  in.SessionID,
		QuestionID: in.QuestionID,
		Answer:     in.Answer,
		AnswerText: AnswerLabel(s.Locale, in.Answer),
		Timestamp:  time.Now().UTC().Format(sessionTimeFormat),
	}, nil
}
