// Package domain defines the persistence models for scenarios, questions,
// reports, report answers, and the audit trail. These types are mapped with
// GORM and form the core data layer of the incident-reporting backend.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Report lifecycle statuses. The workflow is strictly forward-moving:
// draft → submitted → reviewed → processing. No transition back is defined.
const (
	StatusDraft      = "draft"
	StatusSubmitted  = "submitted"
	StatusReviewed   = "reviewed"
	StatusProcessing = "processing"
)

// Audit actions recorded against reports.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// Scenario represents an incident category (e.g., theft, fire) that a citizen
// can report. Scenarios are reference data: seeded at deployment and
// deactivated rather than deleted.
//
// Fields:
//   - ID: auto-increment primary key; list order follows insertion order.
//   - Key: stable, unique identifier used in URLs and stored on reports.
//   - Title: display title (Thai in the seeded data set).
//   - Icon / Color: presentation tokens consumed by the client.
//   - IsActive: soft-deactivation flag; inactive scenarios are invisible
//     to the interview flow.
type Scenario struct {
	ID          uint      `json:"id"           gorm:"primaryKey;autoIncrement"`
	Key         string    `json:"scenario_key" gorm:"column:scenario_key;type:varchar(32);not null;uniqueIndex"`
	Title       string    `json:"title"        gorm:"type:varchar(255);not null"`
	Icon        string    `json:"icon"         gorm:"type:varchar(64)"`
	Color       string    `json:"color"        gorm:"type:varchar(32)"`
	Description string    `json:"description"  gorm:"type:text"`
	IsActive    bool      `json:"is_active"    gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Questions are the ordered yes/no questions asked during the interview.
	// Questions are cascade-deleted if their scenario is removed.
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:ScenarioKey;references:Key;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Scenario.
func (Scenario) TableName() string { return "scenarios" }

// Question is a single yes/no question belonging to exactly one scenario.
// QuestionNumber defines presentation order within the scenario: values must
// be strictly increasing but may contain gaps.
//
// Fields:
//   - ScenarioKey: foreign key to the owning scenario.
//   - QuestionNumber: ordinal position, unique within the scenario.
//   - Text: the question wording shown (and snapshotted onto answers).
//   - Explain: sign-language instruction text accompanying the question.
//   - VideoURL: optional instructional media reference.
type Question struct {
	ID             uint      `json:"id"              gorm:"primaryKey;autoIncrement"`
	ScenarioKey    string    `json:"scenario_key"    gorm:"type:varchar(32);not null;index;uniqueIndex:ux_scenario_question,priority:1"`
	QuestionNumber int       `json:"question_number" gorm:"not null;uniqueIndex:ux_scenario_question,priority:2"`
	Text           string    `json:"text"            gorm:"column:question_text;type:text;not null"`
	Explain        string    `json:"explain"         gorm:"column:explain_text;type:text"`
	VideoURL       string    `json:"video_url"       gorm:"type:varchar(255)"`
	IsActive       bool      `json:"is_active"       gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// Report is a citizen-submitted incident account tied to one scenario and a
// full set of answers.
//
// Fields:
//   - ReportID: primary key in the form "RPT" + yyyymmdd + uppercase hex
//     suffix; globally unique.
//   - ScenarioType: the scenario key at creation time.
//   - ScenarioTitle: denormalized title snapshot taken at creation time.
//     Intentionally never re-synced with later scenario edits; the report
//     must preserve what the citizen actually saw.
//   - Status: workflow state (see Status* constants).
//   - UserInfo / Location: opaque structured blobs supplied by the client.
//   - SubmittedAt: set exactly once, on the first transition to "submitted".
type Report struct {
	ReportID      string         `json:"report_id"      gorm:"type:varchar(40);primaryKey"`
	ScenarioType  string         `json:"scenario_type"  gorm:"type:varchar(32);not null;index"`
	ScenarioTitle string         `json:"scenario_title" gorm:"type:varchar(255);not null"`
	Status        string         `json:"status"         gorm:"type:varchar(16);not null;default:'draft';index;check:status IN ('draft','submitted','reviewed','processing')"`
	UserInfo      datatypes.JSON `json:"user_info,omitempty"`
	Location      datatypes.JSON `json:"location,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	SubmittedAt   *time.Time     `json:"submitted_at"`

	// Answers are the report's yes/no answers in original insertion order.
	// Answers are cascade-deleted when the report is removed.
	Answers []ReportAnswer `json:"answers" gorm:"foreignKey:ReportID;references:ReportID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Report.
func (Report) TableName() string { return "reports" }

// ReportAnswer is one yes/no answer within a report. QuestionText is a
// snapshot of the question wording at answer time, not a live reference:
// later edits to the Question row must not alter historical reports.
// AnswerText is the localized yes/no label derived server-side from the
// boolean (any client-sent label is ignored).
//
// The answer set of a report is replaced wholesale on update; there is no
// partial answer edit.
type ReportAnswer struct {
	ID           uint      `json:"-"             gorm:"primaryKey;autoIncrement"`
	ReportID     string    `json:"-"             gorm:"type:varchar(40);not null;index"`
	QuestionID   int       `json:"question_id"   gorm:"not null"`
	QuestionText string    `json:"question_text" gorm:"type:text;not null"`
	Answer       bool      `json:"answer"        gorm:"not null"`
	AnswerText   string    `json:"answer_text"   gorm:"type:varchar(32);not null"`
	CreatedAt    time.Time `json:"-"`
}

// TableName returns the database table name for ReportAnswer.
func (ReportAnswer) TableName() string { return "report_answers" }

// AuditLog is an append-only record of a create/update/delete action taken on
// a report. Entries reference reports by id only; reports carry no back
// reference, and entries are never mutated or exposed to citizens.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	ReportID  string         `gorm:"type:varchar(40);not null;index"`
	Action    string         `gorm:"type:varchar(16);not null;check:action IN ('create','update','delete')"`
	Details   datatypes.JSON `gorm:""`
	IPAddress string         `gorm:"type:varchar(64)"`
	UserAgent string         `gorm:"type:varchar(255)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

// TableName returns the database table name for AuditLog.
func (AuditLog) TableName() string { return "audit_log" }
