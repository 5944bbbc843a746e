// Package session implements the client-side interview walk-through as a
// typed state machine.
//
// The machine drives a citizen through one incident scenario question by
// question:
//
//	Idle → Answering(0..n-1) → SummaryReady → Submitted
//
// with a HelpOverlay side state reachable from Answering. Help never advances
// the question pointer; a practice answer taken from the overlay is
// equivalent to answering the current question and does advance. Editing from
// the summary resets the whole answer history (editing is not selective).
//
// All answers live in an append-only in-memory history with client
// timestamps. The machine holds no server-side state: per-answer telemetry is
// best-effort and only the final Submit is authoritative. Every collaborator
// (scenario loader, submitter, telemetry, exit confirmation) is injected at
// construction; there are no ambient globals.
//
// A Machine models a single user's flow and is not safe for concurrent use.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/anawat34115/police-care-backend/internal/domain"
	"github.com/anawat34115/police-care-backend/internal/services"
)

// State identifies where in the interview flow the machine currently is.
type State int

const (
	// StateIdle is the initial and post-reset state: no scenario selected.
	StateIdle State = iota
	// StateAnswering means a question is on screen awaiting a yes/no.
	StateAnswering
	// StateHelpOverlay is the sign-language help view over the current question.
	StateHelpOverlay
	// StateSummaryReady means every question is answered and the summary is shown.
	StateSummaryReady
	// StateSubmitted means the report was accepted by the server.
	StateSubmitted
)

// String returns a short name for the state, used in errors and logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnswering:
		return "answering"
	case StateHelpOverlay:
		return "help"
	case StateSummaryReady:
		return "summary"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrInvalidTransition is returned when a transition is requested from a
	// state it is not defined for. The machine is left unchanged.
	ErrInvalidTransition = errors.New("session: invalid transition")
	// ErrNoQuestions is returned by SelectCategory when the scenario carries
	// no questions to walk through.
	ErrNoQuestions = errors.New("session: scenario has no questions")
	// ErrExitCancelled is returned by Exit when the confirmation callback
	// declines discarding the in-progress answers.
	ErrExitCancelled = errors.New("session: exit cancelled")
)

// Answer is one entry of the session's append-only answer history.
type Answer struct {
	QuestionID   int       `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Answer       bool      `json:"answer"`
	AnswerText   string    `json:"answer_text"`
	Timestamp    time.Time `json:"timestamp"`
}

// ScenarioLoader fetches a scenario and its ordered questions.
type ScenarioLoader interface {
	GetScenario(ctx context.Context, key string) (*domain.Scenario, error)
}

// Submitter persists the finished report. Implementations must honor the
// idempotency key so a retried submit cannot create a duplicate.
type Submitter interface {
	CreateReport(ctx context.Context, in services.CreateReportInput, idempotencyKey string) (*domain.Report, error)
}

// Telemetry carries the optional out-of-band interview calls. Both are
// best-effort: the machine logs failures and moves on.
type Telemetry interface {
	StartInterview(ctx context.Context, scenarioType string) (*services.InterviewSession, error)
	SendAnswer(ctx context.Context, in services.InterviewAnswerInput) (*services.InterviewAnswerEcho, error)
}

// ConfirmFunc guards Exit. It should present a confirmation to the user and
// report whether discarding the session is allowed. A nil ConfirmFunc means
// exits are always allowed.
type ConfirmFunc func() bool

// Options configures a Machine.
type Options struct {
	// Scenarios loads the question list on SelectCategory. Required.
	Scenarios ScenarioLoader
	// Submitter persists the final report on Submit. Required.
	Submitter Submitter
	// Telemetry receives best-effort session/answer events. Optional.
	Telemetry Telemetry
	// Confirm guards Exit when answers would be lost. Optional.
	Confirm ConfirmFunc
	// Locale selects the language of the locally derived answer labels.
	// The zero value matches Thai.
	Locale language.Tag
	// Now overrides the clock for the history timestamps. Optional.
	Now func() time.Time
}

// Machine is the interview state machine for one user flow.
type Machine struct {
	opts Options

	state     State
	scenario  *domain.Scenario
	questions []domain.Question
	index     int
	history   []Answer
	sessionID string
	report    *domain.Report
}

// New constructs an idle Machine.
func New(opts Options) (*Machine, error) {
	if opts.Scenarios == nil {
		return nil, errors.New("session: Scenarios loader is required")
	}
	if opts.Submitter == nil {
		return nil, errors.New("session: Submitter is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Machine{opts: opts, state: StateIdle}, nil
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// SessionID returns the correlation id allocated on entering the first
// question, or "" while idle.
func (m *Machine) SessionID() string { return m.sessionID }

// Scenario returns the selected scenario, or nil while idle.
func (m *Machine) Scenario() *domain.Scenario { return m.scenario }

// Report returns the persisted report after a successful Submit, else nil.
func (m *Machine) Report() *domain.Report { return m.report }

// History returns a copy of the answer history in question order.
func (m *Machine) History() []Answer {
	out := make([]Answer, len(m.history))
	copy(out, m.history)
	return out
}

// Progress reports the zero-based index of the current question and the total
// question count. Outside Answering/HelpOverlay both values describe the walk
// that produced the current state (e.g. index==total at the summary).
func (m *Machine) Progress() (index, total int) {
	return m.index, len(m.questions)
}

// CurrentQuestion returns the question awaiting an answer. It is only defined
// in Answering and HelpOverlay.
func (m *Machine) CurrentQuestion() (*domain.Question, error) {
	if m.state != StateAnswering && m.state != StateHelpOverlay {
		return nil, fmt.Errorf("%w: no current question in %s", ErrInvalidTransition, m.state)
	}
	q := m.questions[m.index]
	return &q, nil
}

// SelectCategory loads the scenario for key and enters Answering(0) with an
// empty history. Only valid from Idle.
//
// The session correlation id is allocated here: the server-side interview
// start is attempted first, and a locally generated id stands in when that
// call fails (telemetry is never allowed to block the flow).
func (m *Machine) SelectCategory(ctx context.Context, key string) error {
	if m.state != StateIdle {
		return fmt.Errorf("%w: selectCategory from %s", ErrInvalidTransition, m.state)
	}

	sc, err := m.opts.Scenarios.GetScenario(ctx, key)
	if err != nil {
		return fmt.Errorf("load scenario %q: %w", key, err)
	}
	if len(sc.Questions) == 0 {
		return ErrNoQuestions
	}

	m.scenario = sc
	m.questions = sc.Questions
	m.index = 0
	m.history = m.history[:0]
	m.sessionID = m.allocateSessionID(ctx, sc.Key)
	m.state = StateAnswering
	return nil
}

// Answer records a yes/no for the current question and advances: to the next
// question, or to SummaryReady after the last one. Only valid from Answering.
func (m *Machine) Answer(ctx context.Context, yes bool) error {
	if m.state != StateAnswering {
		return fmt.Errorf("%w: answer from %s", ErrInvalidTransition, m.state)
	}
	m.recordAnswer(ctx, yes)
	return nil
}

// Help opens the sign-language help overlay for the current question. The
// question pointer does not move. Only valid from Answering.
func (m *Machine) Help() error {
	if m.state != StateAnswering {
		return fmt.Errorf("%w: help from %s", ErrInvalidTransition, m.state)
	}
	m.state = StateHelpOverlay
	return nil
}

// CloseHelp returns from the help overlay to the same question.
func (m *Machine) CloseHelp() error {
	if m.state != StateHelpOverlay {
		return fmt.Errorf("%w: closeHelp from %s", ErrInvalidTransition, m.state)
	}
	m.state = StateAnswering
	return nil
}

// PracticeAnswer answers the current question from within the help overlay.
// Its effect is identical to closing help and answering directly.
func (m *Machine) PracticeAnswer(ctx context.Context, yes bool) error {
	if m.state != StateHelpOverlay {
		return fmt.Errorf("%w: practiceAnswer from %s", ErrInvalidTransition, m.state)
	}
	m.state = StateAnswering
	m.recordAnswer(ctx, yes)
	return nil
}

// Edit returns from the summary to the first question and discards the whole
// answer history. Editing is not selective.
func (m *Machine) Edit() error {
	if m.state != StateSummaryReady {
		return fmt.Errorf("%w: edit from %s", ErrInvalidTransition, m.state)
	}
	m.index = 0
	m.history = m.history[:0]
	m.state = StateAnswering
	return nil
}

// Submit packages the scenario, the full answer history, and the caller
// metadata into a report and persists it through the injected Submitter. The
// session id doubles as the idempotency key, so retrying a failed submit is
// safe.
//
// On failure the machine stays in SummaryReady and the error is returned for
// the caller to surface; on success it moves to Submitted and the persisted
// report becomes available via Report().
func (m *Machine) Submit(ctx context.Context, userInfo, location json.RawMessage) error {
	if m.state != StateSummaryReady {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, m.state)
	}

	in := services.CreateReportInput{
		ScenarioType:  m.scenario.Key,
		ScenarioTitle: m.scenario.Title,
		Answers:       make([]services.AnswerInput, 0, len(m.history)),
		UserInfo:      userInfo,
		Location:      location,
	}
	for _, a := range m.history {
		in.Answers = append(in.Answers, services.AnswerInput{
			QuestionID:   a.QuestionID,
			QuestionText: a.QuestionText,
			Answer:       a.Answer,
			Timestamp:    a.Timestamp.Format(time.RFC3339),
		})
	}

	r, err := m.opts.Submitter.CreateReport(ctx, in, m.sessionID)
	if err != nil {
		return fmt.Errorf("submit report: %w", err)
	}

	m.report = r
	m.state = StateSubmitted
	return nil
}

// Clear discards the session from the summary and returns to Idle.
func (m *Machine) Clear() error {
	if m.state != StateSummaryReady {
		return fmt.Errorf("%w: clear from %s", ErrInvalidTransition, m.state)
	}
	m.reset()
	return nil
}

// StartNew discards the finished session and returns to Idle for another
// report.
func (m *Machine) StartNew() error {
	if m.state != StateSubmitted {
		return fmt.Errorf("%w: startNew from %s", ErrInvalidTransition, m.state)
	}
	m.reset()
	return nil
}

// Exit discards the session from any state. When answers would be lost (any
// state past Idle except Submitted, whose report is already safe) the
// confirmation callback must approve the discard first; a declined
// confirmation leaves the machine untouched.
func (m *Machine) Exit() error {
	if m.state != StateIdle && m.state != StateSubmitted && m.opts.Confirm != nil {
		if !m.opts.Confirm() {
			return ErrExitCancelled
		}
	}
	m.reset()
	return nil
}

// recordAnswer appends one history entry for the current question, fires the
// best-effort telemetry, and advances the pointer (into SummaryReady after
// the last question). Caller guarantees state==StateAnswering.
func (m *Machine) recordAnswer(ctx context.Context, yes bool) {
	q := m.questions[m.index]
	m.history = append(m.history, Answer{
		QuestionID:   q.QuestionNumber,
		QuestionText: q.Text,
		Answer:       yes,
		AnswerText:   services.AnswerLabel(m.opts.Locale, yes),
		Timestamp:    m.opts.Now(),
	})

	if m.opts.Telemetry != nil {
		if _, err := m.opts.Telemetry.SendAnswer(ctx, services.InterviewAnswerInput{
			SessionID:  m.sessionID,
			QuestionID: q.QuestionNumber,
			Answer:     yes,
		}); err != nil {
			log.Debug().Err(err).Str("session_id", m.sessionID).Msg("answer telemetry failed")
		}
	}

	m.index++
	if m.index >= len(m.questions) {
		m.state = StateSummaryReady
	}
}

// allocateSessionID obtains the correlation id for this walk-through,
// preferring the server-issued one and falling back to a local uuid.
func (m *Machine) allocateSessionID(ctx context.Context, scenarioType string) string {
	if m.opts.Telemetry != nil {
		if sess, err := m.opts.Telemetry.StartInterview(ctx, scenarioType); err == nil && sess.SessionID != "" {
			return sess.SessionID
		} else if err != nil {
			log.Debug().Err(err).Str("scenario", scenarioType).Msg("interview start telemetry failed")
		}
	}
	return "interview_" + uuid.NewString()
}

// reset returns the machine to a pristine Idle state.
func (m *Machine) reset() {
	m.state = StateIdle
	m.scenario = nil
	m.questions = nil
	m.index = 0
	m.history = nil
	m.sessionID = ""
	m.report = nil
}
