package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/berkgungor/quantix/internal/application"
	domain "github.com/berkgungor/quantix/internal/domain/analysis"
)

// Service implements use-cases untuk Analysis.
// Safe for concurrent use as long as Repo is.
type Service struct {
	Repo      domain.Repository
	Generator domain.Generator
	Clock     application.Clock
	Logger    *zap.Logger
	// NewID overrides record id generation, defaults to UUIDv4.
	NewID func() string
}

// NewService wires a Service with the system clock and a generator sharing it.
func NewService(repo domain.Repository, logger *zap.Logger) *Service {
	clock := application.SystemClock{}
	return &Service{
		Repo:      repo,
		Generator: domain.Generator{Now: clock.Now},
		Clock:     clock,
		Logger:    logger,
	}
}

// Submit validates the service type and request, stores a processing record and
// completes it with generated results before returning.
func (s *Service) Submit(ctx context.Context, serviceType string, req domain.Request) (*domain.Record, error) {
	st, err := domain.ParseServiceType(serviceType)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := domain.ID(s.newID())
	rec := &domain.Record{
		ID:        id,
		Status:    domain.StatusProcessing,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create analysis %s: %w", id, err)
	}

	results := s.Generator.Generate(st, req)
	completedAt := s.now()
	err = s.Repo.Update(ctx, id, func(r *domain.Record) {
		r.Status = domain.StatusCompleted
		r.Results = results
		r.CompletedAt = &completedAt
	})
	if err != nil {
		return nil, fmt.Errorf("complete analysis %s: %w", id, err)
	}

	s.logger().Debug("analysis completed",
		zap.String("id", string(id)),
		zap.String("service_type", string(st)),
	)
	return s.Repo.Get(ctx, id)
}

// Get ambil 1 analysis by id
func (s *Service) Get(ctx context.Context, id domain.ID) (*domain.Record, error) {
	return s.Repo.Get(ctx, id)
}

// Results returns only the results of a completed analysis.
func (s *Service) Results(ctx context.Context, id domain.ID) (domain.Results, error) {
	rec, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rec.Completed() {
		return nil, domain.ErrProcessing
	}
	return rec.Results, nil
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return application.SystemClock{}.Now()
	}
	return s.Clock.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.New().String()
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
