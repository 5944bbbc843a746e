package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anawat34115/police-care-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedReport(t *testing.T, db *gorm.DB, id string, createdAt time.Time) {
	t.Helper()
	r := &domain.Report{
		ReportID:      id,
		ScenarioType:  "theft",
		ScenarioTitle: "title",
		Status:        domain.StatusDraft,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if err := InsertReport(context.Background(), db, r); err != nil {
		t.Fatalf("insert report %s: %v", id, err)
	}
	answers := []domain.ReportAnswer{
		{QuestionID: 1, QuestionText: "q1", Answer: true, AnswerText: "ใช่"},
		{QuestionID: 2, QuestionText: "q2", Answer: false, AnswerText: "ไม่ใช่"},
	}
	if err := InsertAnswers(context.Background(), db, id, answers); err != nil {
		t.Fatalf("insert answers %s: %v", id, err)
	}
}

func TestInsertAndGetReport_AnswerOrder(t *testing.T) {
	db := newTestDB(t)
	seedReport(t, db, "RPT20250101AAAA00000001", time.Now().UTC())

	got, err := GetReport(context.Background(), db, "RPT20250101AAAA00000001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Answers) != 2 || got.Answers[0].QuestionID != 1 || got.Answers[1].QuestionID != 2 {
		t.Fatalf("answers not in insertion order: %+v", got.Answers)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	db := newTestDB(t)
	if _, err := GetReport(context.Background(), db, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListReportPage_NewestFirst_WithCounts(t *testing.T) {
	db := newTestDB(t)
	base := time.Now().UTC().Add(-time.Hour)
	seedReport(t, db, "RPT20250101AAAA00000001", base)
	seedReport(t, db, "RPT20250101AAAA00000002", base.Add(time.Minute))
	seedReport(t, db, "RPT20250101AAAA00000003", base.Add(2*time.Minute))

	items, err := ListReportPage(context.Background(), db, 0, 10, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(items))
	}
	if items[0].ReportID != "RPT20250101AAAA00000003" {
		t.Fatalf("expected newest first, got %q", items[0].ReportID)
	}
	for _, it := range items {
		if it.AnswerCount != 2 {
			t.Fatalf("answer count wrong for %s: %d", it.ReportID, it.AnswerCount)
		}
	}

	// Offset + limit
	page2, err := ListReportPage(context.Background(), db, 2, 10, "")
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}
	if len(page2) != 1 || page2[0].ReportID != "RPT20250101AAAA00000001" {
		t.Fatalf("unexpected offset result: %+v", page2)
	}
}

func TestUpdateReportFields_And_RowsAffected(t *testing.T) {
	db := newTestDB(t)
	seedReport(t, db, "RPT20250101AAAA00000001", time.Now().UTC())

	err := UpdateReportFields(context.Background(), db, "RPT20250101AAAA00000001", map[string]any{
		"status": domain.StatusReviewed,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := GetReport(context.Background(), db, "RPT20250101AAAA00000001")
	if got.Status != domain.StatusReviewed {
		t.Fatalf("status not updated: %q", got.Status)
	}

	if err := UpdateReportFields(context.Background(), db, "missing", map[string]any{"status": "draft"}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for unknown id, got %v", err)
	}
}

func TestReplaceAnswers(t *testing.T) {
	db := newTestDB(t)
	seedReport(t, db, "RPT20250101AAAA00000001", time.Now().UTC())

	err := ReplaceAnswers(context.Background(), db, "RPT20250101AAAA00000001", []domain.ReportAnswer{
		{QuestionID: 7, QuestionText: "new", Answer: true, AnswerText: "ใช่"},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, _ := GetReport(context.Background(), db, "RPT20250101AAAA00000001")
	if len(got.Answers) != 1 || got.Answers[0].QuestionID != 7 {
		t.Fatalf("replacement incomplete: %+v", got.Answers)
	}
}

func TestDeleteReport_RemovesAnswers(t *testing.T) {
	db := newTestDB(t)
	seedReport(t, db, "RPT20250101AAAA00000001", time.Now().UTC())

	if err := DeleteReport(context.Background(), db, "RPT20250101AAAA00000001"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var answers int64
	db.Model(&domain.ReportAnswer{}).Where("report_id = ?", "RPT20250101AAAA00000001").Count(&answers)
	if answers != 0 {
		t.Fatalf("%d answer rows survived delete", answers)
	}
	if err := DeleteReport(context.Background(), db, "RPT20250101AAAA00000001"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}
}

func TestReportStatistics_TodayBoundary(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	seedReport(t, db, "RPT20250101AAAA00000001", now.UTC())
	seedReport(t, db, "RPT20250101AAAA00000002", now.UTC().Add(-48*time.Hour))

	stats, err := ReportStatistics(context.Background(), db, now)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 {
		t.Fatalf("total mismatch: %+v", stats)
	}
	if stats.Today != 1 {
		t.Fatalf("today should count only reports since local midnight: %+v", stats)
	}
}

func TestCountReports_StatusFilter(t *testing.T) {
	db := newTestDB(t)
	seedReport(t, db, "RPT20250101AAAA00000001", time.Now().UTC())
	seedReport(t, db, "RPT20250101AAAA00000002", time.Now().UTC())
	if err := UpdateReportFields(context.Background(), db, "RPT20250101AAAA00000002", map[string]any{"status": domain.StatusSubmitted}); err != nil {
		t.Fatalf("update: %v", err)
	}

	n, err := CountReports(context.Background(), db, domain.StatusSubmitted)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 submitted, got %d", n)
	}
	all, err := CountReports(context.Background(), db, "")
	if err != nil || all != 2 {
		t.Fatalf("expected 2 total, got %d err=%v", all, err)
	}
}

func TestAppendAndListAudit(t *testing.T) {
	db := newTestDB(t)
	seedReport(t, db, "RPT20250101AAAA00000001", time.Now().UTC())

	meta := RequestMeta{IPAddress: "192.0.2.1", UserAgent: "ua"}
	if err := AppendAudit(context.Background(), db, "RPT20250101AAAA00000001", domain.AuditActionUpdate, map[string]string{"field": "status"}, meta); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := ListAudit(context.Background(), db, "RPT20250101AAAA00000001")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Action != domain.AuditActionUpdate || e.IPAddress != "192.0.2.1" || e.UserAgent != "ua" {
		t.Fatalf("entry fields lost: %+v", e)
	}
	if len(e.Details) == 0 {
		t.Fatalf("details should carry marshaled payload")
	}
}
