package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/berkgungor/quantix/internal/application"
	domain "github.com/berkgungor/quantix/internal/domain/analysis"
	"github.com/berkgungor/quantix/internal/infra/db/memory"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memory.AnalysisRepository) {
	repo := memory.NewAnalysisRepository()
	clock := application.FixedClock{T: fixedNow}
	return &Service{
		Repo:      repo,
		Generator: domain.Generator{Now: clock.Now},
		Clock:     clock,
		Logger:    zaptest.NewLogger(t),
	}, repo
}

func TestSubmitCompletesSynchronously(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, st := range domain.ServiceTypes {
		t.Run(string(st), func(t *testing.T) {
			rec, err := svc.Submit(ctx, string(st), domain.Request{ServiceType: string(st)})
			require.NoError(t, err)
			assert.NotEmpty(t, rec.ID)
			assert.Equal(t, domain.StatusCompleted, rec.Status)
			assert.NotNil(t, rec.Results)
			assert.Nil(t, rec.Error)
			assert.Equal(t, fixedNow, rec.CreatedAt)
			require.NotNil(t, rec.CompletedAt)
			assert.Equal(t, fixedNow, *rec.CompletedAt)

			stored, err := svc.Get(ctx, rec.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCompleted, stored.Status)
			assert.NotEqual(t, string(rec.ID), rec.Results["analysis_id"])
		})
	}
}

func TestSubmitInvalidTypeStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	_, err := svc.Submit(ctx, "foo-bar", domain.Request{})
	assert.ErrorIs(t, err, domain.ErrInvalidServiceType)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmitRequiresServiceType(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	_, err := svc.Submit(ctx, "market-research", domain.Request{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmitEchoesRequest(t *testing.T) {
	svc, _ := newTestService(t)
	req := domain.Request{ServiceType: "something-else", Keywords: []string{"crm"}}

	rec, err := svc.Submit(context.Background(), "market-research", req)
	require.NoError(t, err)
	assert.Equal(t, req, rec.Results["input_parameters"])
	assert.Equal(t, "market-research", rec.Results["service_type"])
	assert.Contains(t, rec.Results, "market_size")
}

func TestSubmitUsesInjectedID(t *testing.T) {
	svc, _ := newTestService(t)
	svc.NewID = func() string { return "fixed-id" }

	rec, err := svc.Submit(context.Background(), "build-vs-buy", domain.Request{ServiceType: "build-vs-buy"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("fixed-id"), rec.ID)
}

func TestResults(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	rec, err := svc.Submit(ctx, "rfp-intelligence", domain.Request{ServiceType: "rfp-intelligence"})
	require.NoError(t, err)

	res, err := svc.Results(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Results, res)

	_, err = svc.Results(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Create(ctx, &domain.Record{ID: "pending", Status: domain.StatusProcessing}))
	_, err = svc.Results(ctx, "pending")
	assert.ErrorIs(t, err, domain.ErrProcessing)
}

type failingRepo struct {
	*memory.AnalysisRepository
	err error
}

func (f failingRepo) Update(context.Context, domain.ID, func(*domain.Record)) error {
	return f.err
}

func TestSubmitWrapsRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	svc := &Service{Repo: failingRepo{memory.NewAnalysisRepository(), boom}}

	_, err := svc.Submit(context.Background(), "vendor-selection", domain.Request{ServiceType: "vendor-selection"})
	assert.ErrorIs(t, err, boom)
}
