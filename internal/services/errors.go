// Package services defines the business logic for scenarios, reports, and
// interview sessions. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

var (
	// ErrScenarioNotFound indicates that the requested scenario key is unknown
	// or the scenario has been deactivated.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrReportNotFound indicates that the requested report does not exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrMissingField is returned when a required field (scenario_type,
	// scenario_title) is absent or blank in a create request.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidScenario is returned when scenario_type is not one of the
	// known incident categories.
	ErrInvalidScenario = errors.New("invalid scenario type")

	// ErrEmptyAnswers is returned when a report is created without at least
	// one answer.
	ErrEmptyAnswers = errors.New("at least one answer is required")

	// ErrEmptyPatch is returned when an update request contains no recognized
	// fields; the call is a no-op and nothing is persisted.
	ErrEmptyPatch = errors.New("no updatable fields in request")

	// ErrInvalidStatus is returned when a status value is outside the report
	// workflow (draft, submitted, reviewed, processing).
	ErrInvalidStatus = errors.New("invalid report status")

	// ErrIDCollision is returned when report id generation collided with an
	// existing report on every retry. Callers should treat this as a
	// retryable creation failure.
	ErrIDCollision = errors.New("report id collision")
)
