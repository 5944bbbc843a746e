// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Report
// aggregate (report header + answer rows).
//
// All functions are context-aware and accept a *gorm.DB handle, which may be
// a transaction-bound handle. Transaction boundaries are owned by the service
// layer: create/update/delete compose several of these functions inside one
// transaction so that a report and its answers can never be observed in a
// partially-applied state.
//
// Error semantics:
//   - When a report is not found, functions return gorm.ErrRecordNotFound
//     (exported as ErrNotFound in scenario_repo.go).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/anawat34115/police-care-backend/internal/domain"
)

// ReportSummary is a row of the paginated report listing: header fields plus
// the number of answers, without the answer bodies themselves.
type ReportSummary struct {
	ReportID      string     `json:"report_id"`
	ScenarioTitle string     `json:"scenario_title"`
	Status        string     `json:"status"`
	AnswerCount   int64      `json:"answer_count"`
	CreatedAt     time.Time  `json:"created_at"`
	SubmittedAt   *time.Time `json:"submitted_at"`
}

// StatusCount is one bucket of the per-status report statistics.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Statistics aggregates report counts for operational dashboards.
type Statistics struct {
	Total    int64         `json:"total"`
	Today    int64         `json:"today"`
	ByStatus []StatusCount `json:"by_status"`
}

// InsertReport inserts the report header row. The caller supplies the fully
// populated model, including the generated ReportID, and owns the enclosing
// transaction.
func InsertReport(ctx context.Context, db *gorm.DB, r *domain.Report) error {
	return db.WithContext(ctx).Omit("Answers").Create(r).Error
}

// InsertAnswers inserts the answer rows for reportID in slice order. The
// auto-increment primary key preserves insertion order for later reads.
func InsertAnswers(ctx context.Context, db *gorm.DB, reportID string, answers []domain.ReportAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	for i := range answers {
		answers[i].ID = 0
		answers[i].ReportID = reportID
	}
	return db.WithContext(ctx).Create(&answers).Error
}

// GetReport fetches a report with its answers reconstructed in original
// insertion order. It returns ErrNotFound when the id is unknown.
func GetReport(ctx context.Context, db *gorm.DB, reportID string) (*domain.Report, error) {
	var r domain.Report
	err := db.WithContext(ctx).
		Preload("Answers", func(tx *gorm.DB) *gorm.DB { return tx.Order("id asc") }).
		Where("report_id = ?", reportID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountReports returns the total number of reports, optionally filtered by
// status (empty string means no filter).
func CountReports(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.Report{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// ListReportPage returns a page of report summaries ordered newest-first,
// optionally filtered by status. Each summary carries the answer count of the
// report. The caller computes offset and limit; use CountReports for the
// pagination envelope.
func ListReportPage(ctx context.Context, db *gorm.DB, offset, limit int, status string) ([]ReportSummary, error) {
	q := db.WithContext(ctx).
		Model(&domain.Report{}).
		Select("reports.report_id, reports.scenario_title, reports.status, COUNT(report_answers.id) AS answer_count, reports.created_at, reports.submitted_at").
		Joins("LEFT JOIN report_answers ON report_answers.report_id = reports.report_id").
		Group("reports.report_id")
	if status != "" {
		q = q.Where("reports.status = ?", status)
	}
	var out []ReportSummary
	err := q.
		Order("reports.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// UpdateReportFields applies a partial column update to a report. The fields
// map uses column names as keys. If no rows are affected (unknown id), it
// returns ErrNotFound. The caller owns the enclosing transaction.
func UpdateReportFields(ctx context.Context, db *gorm.DB, reportID string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Report{}).
		Where("report_id = ?", reportID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceAnswers deletes all answers of reportID and inserts the given set in
// order. The answer set is replaced wholesale; there is no partial answer
// edit. Must run inside the same transaction as the report header update.
func ReplaceAnswers(ctx context.Context, db *gorm.DB, reportID string, answers []domain.ReportAnswer) error {
	if err := db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Delete(&domain.ReportAnswer{}).Error; err != nil {
		return err
	}
	return InsertAnswers(ctx, db, reportID, answers)
}

// DeleteReport removes a report and its answers. Answers are deleted
// explicitly inside the same transaction rather than relying on the FK
// cascade, so behavior does not depend on the foreign_keys pragma being on.
// Returns ErrNotFound when the id is unknown.
func DeleteReport(ctx context.Context, db *gorm.DB, reportID string) error {
	if err := db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Delete(&domain.ReportAnswer{}).Error; err != nil {
		return err
	}
	res := db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Delete(&domain.Report{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReportStatistics returns aggregate report counts: the overall total, the
// number created on the current calendar day, and a per-status breakdown.
func ReportStatistics(ctx context.Context, db *gorm.DB, now time.Time) (*Statistics, error) {
	var stats Statistics

	if err := db.WithContext(ctx).
		Model(&domain.Report{}).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := db.WithContext(ctx).
		Model(&domain.Report{}).
		Where("created_at >= ?", dayStart).
		Count(&stats.Today).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Model(&domain.Report{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status asc").
		Scan(&stats.ByStatus).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
