// Package services – ReportService
//
// This file implements the ReportService, which owns the report lifecycle:
// transactional creation of a report header plus its answer rows, reads with
// answers in insertion order, paginated summaries, partial updates with
// wholesale answer replacement, deletion, and aggregate statistics. Every
// persistence-touching operation runs inside a transaction so a report can
// never be observed partially applied; the audit trail is appended outside
// the correctness-critical path so an audit failure never rolls back the
// operation it describes.
package services

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/anawat34115/police-care-backend/internal/domain"
	"github.com/anawat34115/police-care-backend/internal/repo"
	"github.com/anawat34115/police-care-backend/internal/validate"
)

// createIDRetries bounds how often report creation regenerates the id after a
// primary-key collision before giving up with ErrIDCollision.
const createIDRetries = 3

// AnswerInput is one answer within a create or update request. AnswerText is
// accepted for wire compatibility with older clients but ignored: the stored
// label is always derived server-side from the boolean.
type AnswerInput struct {
	QuestionID   int    `json:"question_id"`
	QuestionText string `json:"question_text"`
	Answer       bool   `json:"answer"`
	AnswerText   string `json:"answer_text,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}

// CreateReportInput is the payload for ReportService.Create.
type CreateReportInput struct {
	ScenarioType  string          `json:"scenario_type"`
	ScenarioTitle string          `json:"scenario_title"`
	Answers       []AnswerInput   `json:"answers"`
	UserInfo      json.RawMessage `json:"user_info,omitempty"`
	Location      json.RawMessage `json:"location,omitempty"`

	// IdempotencyKey, when non-empty, makes the create safely retryable:
	// a second call with the same key returns the originally created report.
	IdempotencyKey string `json:"-"`
}

// UpdateReportInput is the partial patch for ReportService.Update. Nil fields
// are left unchanged; a nil Answers slice means "keep answers", while a
// non-nil slice replaces the whole answer set.
type UpdateReportInput struct {
	Status   *string         `json:"status,omitempty"`
	UserInfo json.RawMessage `json:"user_info,omitempty"`
	Location json.RawMessage `json:"location,omitempty"`
	Answers  []AnswerInput   `json:"answers,omitempty"`
}

// Pagination carries the pagination envelope for report listings.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ReportService implements the report lifecycle use-cases. The service is
// context-aware and opens its own transaction per mutating call.
type ReportService struct {
	// DB is the database handle used for all report operations.
	DB *gorm.DB

	// Locale selects the language of the derived yes/no answer labels.
	// The zero value matches Thai, the primary deployment language.
	Locale language.Tag

	// IdempotencyTTL is how long a creation idempotency key stays valid.
	// Zero defaults to 24h.
	IdempotencyTTL time.Duration
}

// NewReportID generates a fresh report identifier: "RPT" + yyyymmdd of t +
// a 12-character uppercase hex suffix. Uniqueness is enforced by the primary
// key; collisions are handled by the caller via retry.
func NewReportID(t time.Time) string {
	u := uuid.New()
	return "RPT" + t.Format("20060102") + strings.ToUpper(hex.EncodeToString(u[:6]))
}

// Create validates the input, generates a unique report id, and writes the
// report header (status=draft) plus all answer rows in one transaction.
//
// Semantics:
//   - scenario_type and scenario_title are required; scenario_type must be a
//     known incident category.
//   - At least one answer is required; answer labels are derived from the
//     booleans server-side.
//   - A primary-key collision on the generated id is retried with a fresh id
//     up to createIDRetries times, then surfaced as ErrIDCollision.
//   - When an idempotency key is present and a non-expired record exists for
//     it, the originally created report is returned and nothing is written.
//   - One "create" audit entry is appended after the commit; audit failure is
//     logged but never affects the created report.
//
// On success the freshly persisted report is re-read and returned, including
// its answers, guaranteeing read-your-write consistency.
func (s *ReportService) Create(ctx context.Context, in CreateReportInput, meta repo.RequestMeta) (*domain.Report, error) {
	if strings.TrimSpace(in.ScenarioType) == "" || strings.TrimSpace(in.ScenarioTitle) == "" {
		return nil, ErrMissingField
	}
	if !validate.ScenarioType(in.ScenarioType) {
		return nil, ErrInvalidScenario
	}
	if len(in.Answers) == 0 {
		return nil, ErrEmptyAnswers
	}

	// Replay of a previously completed create?
	if in.IdempotencyKey != "" {
		if rec, err := repo.GetIdempotency(ctx, s.DB, in.IdempotencyKey, time.Now().UTC()); err == nil {
			return s.Get(ctx, rec.ReportID)
		}
	}

	answers := s.buildAnswers(in.Answers)

	var reportID string
	for attempt := 0; attempt < createIDRetries; attempt++ {
		now := time.Now().UTC()
		id := NewReportID(now)
		r := &domain.Report{
			ReportID:      id,
			ScenarioType:  in.ScenarioType,
			ScenarioTitle: in.ScenarioTitle,
			Status:        domain.StatusDraft,
			UserInfo:      datatypes.JSON(in.UserInfo),
			Location:      datatypes.JSON(in.Location),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := repo.InsertReport(ctx, tx, r); err != nil {
				return err
			}
			return repo.InsertAnswers(ctx, tx, id, answers)
		})
		if err == nil {
			reportID = id
			break
		}
		if isDuplicate(err) {
			continue
		}
		return nil, err
	}
	if reportID == "" {
		return nil, ErrIDCollision
	}

	if in.IdempotencyKey != "" {
		if _, err := repo.CreateIdempotency(ctx, s.DB, in.IdempotencyKey, reportID, 201, s.idempotencyTTL()); err != nil && !errors.Is(err, repo.ErrDuplicate) {
			log.Warn().Err(err).Str("report_id", reportID).Msg("idempotency record failed")
		}
	}

	s.audit(ctx, reportID, domain.AuditActionCreate, in, meta)

	return s.Get(ctx, reportID)
}

// Get returns the report with its answers in original insertion order, or
// ErrReportNotFound.
func (s *ReportService) Get(ctx context.Context, reportID string) (*domain.Report, error) {
	r, err := repo.GetReport(ctx, s.DB, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListPage returns a page of report summaries ordered newest-first with a
// pagination envelope. page and limit are clamped to sane bounds; an unknown
// status filter yields ErrInvalidStatus.
func (s *ReportService) ListPage(ctx context.Context, page, limit int, status string) ([]repo.ReportSummary, Pagination, error) {
	if status != "" && !validate.ReportStatus(status) {
		return nil, Pagination{}, ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	total, err := repo.CountReports(ctx, s.DB, status)
	if err != nil {
		return nil, Pagination{}, err
	}
	p := Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int((total + int64(limit) - 1) / int64(limit)),
	}
	if total == 0 {
		return []repo.ReportSummary{}, p, nil
	}

	items, err := repo.ListReportPage(ctx, s.DB, offset, limit, status)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, p, nil
}

// Update applies a partial patch to a report in one transaction: status
// (stamping submitted_at exactly on the first transition to "submitted"),
// user_info, location, and/or wholesale answer replacement. A patch with no
// recognized fields fails with ErrEmptyPatch and persists nothing. One
// "update" audit entry is appended after the commit.
func (s *ReportService) Update(ctx context.Context, reportID string, in UpdateReportInput, meta repo.RequestMeta) (*domain.Report, error) {
	if in.Status == nil && in.UserInfo == nil && in.Location == nil && in.Answers == nil {
		return nil, ErrEmptyPatch
	}
	if in.Status != nil && !validate.ReportStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := repo.GetReport(ctx, tx, reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return err
		}

		now := time.Now().UTC()
		fields := map[string]any{"updated_at": now}
		if in.Status != nil {
			fields["status"] = *in.Status
			// submitted_at is written once, on the first transition into
			// "submitted"; later patches never touch it.
			if *in.Status == domain.StatusSubmitted && cur.SubmittedAt == nil {
				fields["submitted_at"] = now
			}
		}
		if in.UserInfo != nil {
			fields["user_info"] = datatypes.JSON(in.UserInfo)
		}
		if in.Location != nil {
			fields["location"] = datatypes.JSON(in.Location)
		}
		if err := repo.UpdateReportFields(ctx, tx, reportID, fields); err != nil {
			return err
		}

		if in.Answers != nil {
			if len(in.Answers) == 0 {
				return ErrEmptyAnswers
			}
			return repo.ReplaceAnswers(ctx, tx, reportID, s.buildAnswers(in.Answers))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, reportID, domain.AuditActionUpdate, in, meta)

	return s.Get(ctx, reportID)
}

// Delete removes a report and its answers, then appends a "delete" audit
// entry. Returns ErrReportNotFound when the id is unknown.
func (s *ReportService) Delete(ctx context.Context, reportID string, meta repo.RequestMeta) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.DeleteReport(ctx, tx, reportID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}

	s.audit(ctx, reportID, domain.AuditActionDelete, map[string]string{"report_id": reportID}, meta)
	return nil
}

// Statistics returns aggregate report counts by status plus today's total.
func (s *ReportService) Statistics(ctx context.Context) (*repo.Statistics, error) {
	return repo.ReportStatistics(ctx, s.DB, time.Now())
}

// buildAnswers converts wire answers to persistence rows, deriving the
// localized answer label from each boolean.
func (s *ReportService) buildAnswers(in []AnswerInput) []domain.ReportAnswer {
	now := time.Now().UTC()
	out := make([]domain.ReportAnswer, 0, len(in))
	for _, a := range in {
		out = append(out, domain.ReportAnswer{
			QuestionID:   a.QuestionID,
			QuestionText: a.QuestionText,
			Answer:       a.Answer,
			AnswerText:   AnswerLabel(s.Locale, a.Answer),
			CreatedAt:    now,
		})
	}
	return out
}

// audit appends an audit entry and logs (but swallows) failures: the audit
// trail is best-effort relative to the operation it records.
func (s *ReportService) audit(ctx context.Context, reportID, action string, details any, meta repo.RequestMeta) {
	if err := repo.AppendAudit(ctx, s.DB, reportID, action, details, meta); err != nil {
		log.Warn().Err(err).Str("report_id", reportID).Str("action", action).Msg("audit append failed")
	}
}

func (s *ReportService) idempotencyTTL() time.Duration {
	if s.IdempotencyTTL > 0 {
		return s.IdempotencyTTL
	}
	return 24 * time.Hour
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
