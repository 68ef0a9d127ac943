package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Contadores(t *testing.T) {
	r := New()
	r.DispatchCreated()
	r.MovementRegistered("outbound")
	r.MovementRegistered("outbound")
	r.StockRejected("dispatch")
	r.OrderSaved("create")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.dispatches))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.movements.WithLabelValues("outbound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.stockRejected.WithLabelValues("dispatch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.orders.WithLabelValues("create")))
}

func TestRecorder_MiddlewareYHandler(t *testing.T) {
	r := New()
	app := fiber.New()
	app.Use(r.Middleware())
	app.Get("/api/dispatches/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", r.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dispatches/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/api/dispatches/:id", "404")))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "despachosys_http_requests_total"))
}
