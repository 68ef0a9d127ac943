// Package analytics contiene el panel de indicadores del sistema.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
	"github.com/jhoicas/despachosys-api/pkg/logger"
)

// StatsCache snapshot del panel con expiración. Get devuelve (nil, false, nil) si no hay entrada.
type StatsCache interface {
	Get(ctx context.Context) (*dto.DashboardStatsDTO, bool, error)
	Set(ctx context.Context, stats *dto.DashboardStatsDTO) error
	Invalidate(ctx context.Context) error
}

// DashboardUseCase genera los indicadores globales del panel.
//
// Fuente de datos: StatsRepository (consultas read-only e independientes).
// Las consultas corren en paralelo y sin transacción común: cada conteo es
// consistente por sí solo, no entre entidades.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
	cache     StatsCache
	log       *logger.Logger
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(statsRepo repository.StatsRepository, cache StatsCache, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{statsRepo: statsRepo, cache: cache, log: log.Named("dashboard"), now: time.Now}
}

type countResult struct {
	n   int64
	err error
}

// GetStats devuelve los indicadores. Con caché configurada intenta primero el snapshot;
// los errores de la caché se registran y se ignoran.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("caché de indicadores no disponible")
		} else if ok {
			return cached, nil
		}
	}

	now := uc.now()

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	count := func(f func(context.Context) (int64, error)) <-chan countResult {
		ch := make(chan countResult, 1)
		go func() {
			n, err := f(ctx)
			ch <- countResult{n, err}
		}()
		return ch
	}
	overdue := func(f func(context.Context, time.Time) (int64, error)) <-chan countResult {
		return count(func(ctx context.Context) (int64, error) { return f(ctx, now) })
	}

	type sumResult struct {
		sum decimal.Decimal
		err error
	}
	sumCh := make(chan sumResult, 1)
	go func() {
		s, err := uc.statsRepo.SumOnHand(ctx)
		sumCh <- sumResult{s, err}
	}()

	productsCh := count(uc.statsRepo.CountActiveProducts)
	customersCh := count(uc.statsRepo.CountCustomers)
	dispatchesCh := count(uc.statsRepo.CountDispatches)
	ordersCh := count(uc.statsRepo.CountSalesOrders)
	oppsCh := count(uc.statsRepo.CountOpportunities)
	payablesCh := overdue(uc.statsRepo.CountOverduePayables)
	receivablesCh := overdue(uc.statsRepo.CountOverdueReceivables)

	sum := <-sumCh
	results := []struct {
		name string
		r    countResult
	}{
		{"mercaderías activas", <-productsCh},
		{"clientes", <-customersCh},
		{"despachos", <-dispatchesCh},
		{"pedidos", <-ordersCh},
		{"oportunidades", <-oppsCh},
		{"cuentas por pagar vencidas", <-payablesCh},
		{"cuentas por cobrar vencidas", <-receivablesCh},
	}

	if sum.err != nil {
		return nil, fmt.Errorf("dashboard: existencia total: %w", sum.err)
	}
	for _, res := range results {
		if res.r.err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", res.name, res.r.err)
		}
	}

	stats := &dto.DashboardStatsDTO{
		ActiveProducts:     results[0].r.n,
		TotalOnHand:        sum.sum,
		Customers:          results[1].r.n,
		Dispatches:         results[2].r.n,
		SalesOrders:        results[3].r.n,
		Opportunities:      results[4].r.n,
		OverduePayables:    results[5].r.n,
		OverdueReceivables: results[6].r.n,
		GeneratedAt:        now,
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, stats); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo guardar el snapshot de indicadores")
		}
	}
	return stats, nil
}

// Invalidate descarta el snapshot tras una escritura para que el próximo GetStats
// recalcule. Sin caché no hace nada; los errores se registran y se ignoran.
func (uc *DashboardUseCase) Invalidate(ctx context.Context) {
	if uc == nil || uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar el snapshot de indicadores")
	}
}
