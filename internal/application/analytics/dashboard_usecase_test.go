package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/pkg/logger"
)

type fakeStats struct {
	failOn string
	calls  int
}

func (f *fakeStats) fail(name string) error {
	if f.failOn == name {
		return domain.ErrUnavailable
	}
	return nil
}

func (f *fakeStats) CountActiveProducts(context.Context) (int64, error) {
	return 3, f.fail("products")
}
func (f *fakeStats) SumOnHand(context.Context) (decimal.Decimal, error) {
	f.calls++
	return decimal.NewFromInt(170), f.fail("sum")
}
func (f *fakeStats) CountCustomers(context.Context) (int64, error)     { return 4, nil }
func (f *fakeStats) CountDispatches(context.Context) (int64, error)    { return 5, nil }
func (f *fakeStats) CountSalesOrders(context.Context) (int64, error)   { return 6, nil }
func (f *fakeStats) CountOpportunities(context.Context) (int64, error) { return 7, nil }
func (f *fakeStats) CountOverduePayables(context.Context, time.Time) (int64, error) {
	return 1, nil
}
func (f *fakeStats) CountOverdueReceivables(context.Context, time.Time) (int64, error) {
	return 2, f.fail("receivables")
}

type memCache struct {
	stats  *dto.DashboardStatsDTO
	getErr error
	delErr error
	sets   int
	dels   int
}

func (c *memCache) Get(context.Context) (*dto.DashboardStatsDTO, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.stats, c.stats != nil, nil
}

func (c *memCache) Set(_ context.Context, s *dto.DashboardStatsDTO) error {
	c.stats = s
	c.sets++
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.dels++
	if c.delErr != nil {
		return c.delErr
	}
	c.stats = nil
	return nil
}

func TestGetStats_AgregaTodosLosConteos(t *testing.T) {
	repo := &fakeStats{}
	uc := NewDashboardUseCase(repo, nil, logger.Nop())
	fixed := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	s, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.ActiveProducts)
	assert.True(t, decimal.NewFromInt(170).Equal(s.TotalOnHand))
	assert.Equal(t, int64(4), s.Customers)
	assert.Equal(t, int64(5), s.Dispatches)
	assert.Equal(t, int64(6), s.SalesOrders)
	assert.Equal(t, int64(7), s.Opportunities)
	assert.Equal(t, int64(1), s.OverduePayables)
	assert.Equal(t, int64(2), s.OverdueReceivables)
	assert.Equal(t, fixed, s.GeneratedAt)
}

func TestGetStats_PropagaErrorDeConsulta(t *testing.T) {
	uc := NewDashboardUseCase(&fakeStats{failOn: "receivables"}, nil, logger.Nop())
	_, err := uc.GetStats(context.Background())
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
}

func TestGetStats_UsaSnapshotDeCache(t *testing.T) {
	repo := &fakeStats{}
	cache := &memCache{}
	uc := NewDashboardUseCase(repo, cache, logger.Nop())

	_, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	_, err = uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)
}

func TestGetStats_CacheCaidaNoRompe(t *testing.T) {
	repo := &fakeStats{}
	cache := &memCache{getErr: errors.New("redis: connection refused")}
	uc := NewDashboardUseCase(repo, cache, logger.Nop())

	s, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.ActiveProducts)
}

func TestInvalidate_RecalculaTrasEscritura(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStats{}
	cache := &memCache{}
	uc := NewDashboardUseCase(repo, cache, logger.Nop())

	_, err := uc.GetStats(ctx)
	require.NoError(t, err)
	uc.Invalidate(ctx)
	_, err = uc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.dels)
	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, 2, cache.sets)
}

func TestInvalidate_SinCacheOConError(t *testing.T) {
	ctx := context.Background()
	NewDashboardUseCase(&fakeStats{}, nil, logger.Nop()).Invalidate(ctx)

	var nilUC *DashboardUseCase
	nilUC.Invalidate(ctx)

	cache := &memCache{delErr: errors.New("redis: connection refused")}
	NewDashboardUseCase(&fakeStats{}, cache, logger.Nop()).Invalidate(ctx)
	assert.Equal(t, 1, cache.dels)
}
