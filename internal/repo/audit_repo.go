// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the append-only audit trail for report
// actions.
package repo

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/anawat34115/police-care-backend/internal/domain"
)

// RequestMeta carries requester metadata recorded alongside audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// AppendAudit inserts one audit entry for an action taken on a report.
// Details is marshalled to JSON; a nil details value stores an empty blob.
//
// Audit entries are append-only and never mutated. Callers run this outside
// the correctness-critical transaction: an audit failure must not roll back
// the report operation it describes.
func AppendAudit(ctx context.Context, db *gorm.DB, reportID, action string, details any, meta RequestMeta) error {
	var blob []byte
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return err
		}
		blob = b
	}
	entry := &domain.AuditLog{
		ReportID:  reportID,
		Action:    action,
		Details:   blob,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(entry).Error
}

// ListAudit returns the audit entries for a report, oldest first. Used by
// tests and operational tooling; the audit trail is not exposed through the
// public API.
func ListAudit(ctx context.Context, db *gorm.DB, reportID string) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	err := db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("id asc").
		Find(&out).Error
	return out, err
}
