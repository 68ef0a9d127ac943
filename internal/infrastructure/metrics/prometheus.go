// Package metrics expone contadores Prometheus de negocio y de HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "despachosys"

// Recorder implementa inventory.Metrics y sales.Metrics sobre un registro propio.
type Recorder struct {
	registry      *prometheus.Registry
	dispatches    prometheus.Counter
	movements     *prometheus.CounterVec
	stockRejected *prometheus.CounterVec
	orders        *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New registra los colectores en un registro nuevo (incluye Go y proceso).
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		dispatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "dispatches_created_total",
			Help: "Despachos creados.",
		}),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "stock_movements_total",
			Help: "Movimientos de stock registrados por dirección.",
		}, []string{"direction"}),
		stockRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "stock_rejected_total",
			Help: "Operaciones rechazadas por existencia insuficiente.",
		}, []string{"operation"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sales_orders_saved_total",
			Help: "Pedidos de venta guardados por acción.",
		}, []string{"action"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Peticiones HTTP por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.dispatches, r.movements, r.stockRejected, r.orders,
		r.httpRequests, r.httpDuration,
	)
	return r
}

func (r *Recorder) DispatchCreated() { r.dispatches.Inc() }

func (r *Recorder) MovementRegistered(direction string) {
	r.movements.WithLabelValues(direction).Inc()
}

func (r *Recorder) StockRejected(operation string) {
	r.stockRejected.WithLabelValues(operation).Inc()
}

func (r *Recorder) OrderSaved(action string) {
	r.orders.WithLabelValues(action).Inc()
}

// Registry para tests y para exponer colectores adicionales.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Middleware mide cada petición usando la ruta registrada (no la URL) como etiqueta.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		method := c.Method()
		r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el registro en formato Prometheus.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
