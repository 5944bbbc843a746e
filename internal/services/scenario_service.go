// Package services – ScenarioService
//
// This file implements the ScenarioService, the read-only lookup of incident
// categories and their ordered question lists. Scenario authoring is an
// administrative concern outside this service, so no mutation operations
// exist: the interview flow only lists scenarios and fetches one scenario
// together with its questions.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/anawat34115/police-care-backend/internal/domain"
	"github.com/anawat34115/police-care-backend/internal/repo"
)

// ScenarioService provides read-only access to scenarios and questions.
type ScenarioService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns all active scenarios in insertion order.
func (s *ScenarioService) List(ctx context.Context) ([]domain.Scenario, error) {
	return repo.ListScenarios(ctx, s.DB)
}

// Get returns the active scenario for key together with its active questions
// ordered by question_number. It returns ErrScenarioNotFound when the key is
// unknown or the scenario is inactive.
func (s *ScenarioService) Get(ctx context.Context, key string) (*domain.Scenario, error) {
	sc, err := repo.GetScenario(ctx, s.DB, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}
	qs, err := repo.ListQuestions(ctx, s.DB, key)
	if err != nil {
		return nil, err
	}
	sc.Questions = qs
	return sc, nil
}
