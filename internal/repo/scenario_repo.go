// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Scenario
// and Question reference data.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Scenario/question authoring is an administrative concern handled outside
// this service; the interview flow only ever reads this data, so no mutation
// functions exist here.
//
// Error semantics:
//   - When a scenario is not found (unknown key or inactive), functions
//     return gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - On DB errors the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/anawat34115/police-care-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListScenarios returns all active scenarios in insertion (id) order.
// It returns an empty slice when no scenarios are active. On DB error,
// it returns the error.
func ListScenarios(ctx context.Context, db *gorm.DB) ([]domain.Scenario, error) {
	var out []domain.Scenario
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetScenario fetches a single active scenario by its stable key. If the key
// is unknown or the scenario is inactive, it returns ErrNotFound. On other
// DB errors, the raw error is returned.
func GetScenario(ctx context.Context, db *gorm.DB, key string) (*domain.Scenario, error) {
	var s domain.Scenario
	err := db.WithContext(ctx).
		Where("scenario_key = ? AND is_active = ?", key, true).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListQuestions returns the active questions of a scenario ordered by
// question_number ascending. Ordering is gap-tolerant: question_number
// values define presentation order but need not be contiguous.
func ListQuestions(ctx context.Context, db *gorm.DB, scenarioKey string) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("scenario_key = ? AND is_active = ?", scenarioKey, true).
		Order("question_number asc").
		Find(&out).Error
	return out, err
}
