package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/models"
)

var ErrStatsNotFound = errors.New("stats not found")

// statsDocID is the well-known key of the singleton stats document.
const statsDocID = "stats"

// StatsStore persists the singleton stats record.
type StatsStore interface {
	Get(ctx context.Context) (*models.Stats, error)
	Upsert(ctx context.Context, stats *models.Stats) (*models.Stats, error)
}

// ContributionsSource yields the total GitHub contribution count used
// to derive commitsPushed.
type ContributionsSource interface {
	TotalContributions(ctx context.Context) (float64, error)
}

// StatsService owns the aggregate-statistics record. commitsPushed is
// never client-supplied: every upsert derives it fresh from the
// contributions source, and a failed fetch fails the whole upsert —
// there is no fallback to the previously stored value.
type StatsService struct {
	store         StatsStore
	contributions ContributionsSource
	logger        *zap.Logger
}

func NewStatsService(store StatsStore, contributions ContributionsSource, logger *zap.Logger) *StatsService {
	return &StatsService{store: store, contributions: contributions, logger: logger}
}

func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	return s.store.Get(ctx)
}

func (s *StatsService) Upsert(ctx context.Context, in models.StatsInput) (*models.Stats, error) {
	total, err := s.contributions.TotalContributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch contributions: %w", err)
	}

	stats := &models.Stats{
		ID:                   statsDocID,
		ProjectsDone:         in.ProjectsDone,
		YearsOfExperience:    in.YearsOfExperience,
		HoursOfCoding:        in.HoursOfCoding,
		CommitsPushed:        models.Numeric(total),
		CupsOfCoffeeConsumed: in.CupsOfCoffeeConsumed,
	}

	out, err := s.store.Upsert(ctx, stats)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stats upserted", zap.Float64("commits_pushed", total))
	return out, nil
}
