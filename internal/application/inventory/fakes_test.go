package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

// memStore estado en memoria compartido por los repos falsos.
type memStore struct {
	onHand     map[string]int64
	movements  []entity.StockMovement
	dispatches map[string]entity.Dispatch
	// failMovement fuerza un error al insertar el movimiento (prueba de rollback).
	failMovement error
}

func newMemStore() *memStore {
	return &memStore{onHand: map[string]int64{}, dispatches: map[string]entity.Dispatch{}}
}

func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		onHand:       make(map[string]int64, len(s.onHand)),
		movements:    append([]entity.StockMovement(nil), s.movements...),
		dispatches:   make(map[string]entity.Dispatch, len(s.dispatches)),
		failMovement: s.failMovement,
	}
	for k, v := range s.onHand {
		cp.onHand[k] = v
	}
	for k, v := range s.dispatches {
		cp.dispatches[k] = v
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.onHand = from.onHand
	s.movements = from.movements
	s.dispatches = from.dispatches
}

// fakeTx aplica todo o nada: restaura el snapshot si fn falla.
type fakeTx struct{ s *memStore }

func (f fakeTx) RunStock(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	dispatchRepo repository.DispatchRepository,
) error) error {
	snap := f.s.snapshot()
	if err := fn(fakeStock{f.s}, fakeMovements{f.s}, fakeDispatches{f.s}); err != nil {
		f.s.restore(snap)
		return err
	}
	return nil
}

type fakeStock struct{ s *memStore }

func (r fakeStock) Adjust(_ context.Context, productID string, delta int64) (int64, error) {
	cur, ok := r.s.onHand[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if cur+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	r.s.onHand[productID] = cur + delta
	return cur + delta, nil
}

type fakeMovements struct{ s *memStore }

func (r fakeMovements) Create(_ context.Context, m *entity.StockMovement) error {
	if r.s.failMovement != nil {
		return r.s.failMovement
	}
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r fakeMovements) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockMovementView, error) {
	out := make([]*entity.StockMovementView, 0)
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Direction != "" && m.Direction != f.Direction {
			continue
		}
		out = append(out, &entity.StockMovementView{StockMovement: m})
	}
	return out, nil
}

type fakeDispatches struct{ s *memStore }

func (r fakeDispatches) Create(_ context.Context, d *entity.Dispatch) error {
	r.s.dispatches[d.ID] = *d
	return nil
}

func (r fakeDispatches) GetByID(_ context.Context, id string) (*entity.Dispatch, error) {
	d, ok := r.s.dispatches[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r fakeDispatches) GetForUpdate(ctx context.Context, id string) (*entity.Dispatch, error) {
	return r.GetByID(ctx, id)
}

func (r fakeDispatches) GetView(_ context.Context, id string) (*entity.DispatchView, error) {
	d, ok := r.s.dispatches[id]
	if !ok {
		return nil, nil
	}
	return &entity.DispatchView{Dispatch: d}, nil
}

func (r fakeDispatches) GetByTrackingCode(_ context.Context, code string) (*entity.DispatchView, error) {
	for _, d := range r.s.dispatches {
		if d.TrackingCode == code {
			return &entity.DispatchView{Dispatch: d}, nil
		}
	}
	return nil, nil
}

func (r fakeDispatches) List(_ context.Context, f repository.DispatchFilter) ([]*entity.DispatchView, error) {
	out := make([]*entity.DispatchView, 0)
	for _, d := range r.s.dispatches {
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		out = append(out, &entity.DispatchView{Dispatch: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeDispatches) Update(_ context.Context, d *entity.Dispatch) error {
	if _, ok := r.s.dispatches[d.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.dispatches[d.ID] = *d
	return nil
}

func (r fakeDispatches) Delete(_ context.Context, id string) error {
	if _, ok := r.s.dispatches[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.dispatches, id)
	return nil
}

// countingMetrics registra las llamadas para aserciones.
type countingMetrics struct {
	dispatches int
	movements  map[string]int
	rejected   int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{movements: map[string]int{}}
}

func (m *countingMetrics) DispatchCreated()            { m.dispatches++ }
func (m *countingMetrics) MovementRegistered(d string) { m.movements[d]++ }
func (m *countingMetrics) StockRejected(string)        { m.rejected++ }
