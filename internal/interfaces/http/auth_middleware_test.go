package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	apphttp "github.com/jhoicas/despachosys-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/despachosys-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
)

// guardedApp monta /guarded detrás de AuthMiddleware + RequireRole(allowed...).
func guardedApp(allowed ...string) *fiber.App {
	app := fiber.New()
	app.Post("/guarded",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
		},
	)
	return app
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, "despachosys-test", 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

func post(t *testing.T, app *fiber.App, auth string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRequireRole_PoliticaDeEscritura(t *testing.T) {
	app := guardedApp(entity.RoleAdmin, entity.RoleUser, entity.RoleDispatcher)

	cases := []struct {
		role   string
		status int
	}{
		{entity.RoleAdmin, http.StatusOK},
		{entity.RoleUser, http.StatusOK},
		{entity.RoleDispatcher, http.StatusOK},
		{entity.RoleViewer, http.StatusForbidden},
		{"superuser", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			status, body := post(t, app, bearer(t, tc.role))
			assert.Equal(t, tc.status, status)
			if tc.status == http.StatusForbidden {
				assert.Contains(t, body, "FORBIDDEN")
			}
		})
	}
}

func TestRequireRole_SoloAdmin(t *testing.T) {
	app := guardedApp(entity.RoleAdmin)

	status, _ := post(t, app, bearer(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, status)

	status, _ = post(t, app, bearer(t, entity.RoleDispatcher))
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	status, body := post(t, guardedApp(entity.RoleAdmin), bearer(t, ""))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "MISSING_ROLE")
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	app := guardedApp(entity.RoleAdmin)

	for name, header := range map[string]string{
		"sin header":   "",
		"sin bearer":   "Token abc",
		"malformado":   "Bearer token.invalido.aqui",
		"otro secreto": "Bearer " + mustToken(t, "otro-secreto", entity.RoleAdmin),
	} {
		t.Run(name, func(t *testing.T) {
			status, _ := post(t, app, header)
			assert.Equal(t, http.StatusUnauthorized, status)
		})
	}
}

func TestAuthMiddleware_CargaLocals(t *testing.T) {
	status, body := post(t, guardedApp(entity.RoleDispatcher), bearer(t, entity.RoleDispatcher))
	require.Equal(t, http.StatusOK, status)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, testUserID, got["user_id"])
	assert.Equal(t, entity.RoleDispatcher, got["role"])
}

func mustToken(t *testing.T, secret, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testUserID, role, "despachosys-test", 60)
	require.NoError(t, err)
	return tok
}
