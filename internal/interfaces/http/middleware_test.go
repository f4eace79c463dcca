package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/activos-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/activos-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testOrgID     = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "activos-pro-test"
	testExpMin    = 60
)

// stubFeatureChecker responde siempre lo mismo; permite probar el middleware
// sin base de datos.
type stubFeatureChecker struct {
	active bool
	err    error
}

func (s *stubFeatureChecker) HasFeature(ctx context.Context, orgID string, feature entity.Feature) (bool, error) {
	return s.active, s.err
}

// buildProtectedApp construye una app Fiber mínima con AuthMiddleware y un
// handler que devuelve los Locals cargados por el middleware.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		tc := apphttp.TenantFromCtx(c)
		return c.JSON(fiber.Map{
			"user_id": tc.UserID,
			"org_id":  tc.OrgID,
			"role":    tc.Role,
		})
	})
	return app
}

// tokenFor genera un JWT firmado con el secret de test.
func tokenFor(t *testing.T, orgID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, orgID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoCargaTenant(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "/protected", tokenFor(t, testOrgID, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testOrgID, body["org_id"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_EsquemaNoEsBearer_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "/protected", "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-distinto", testUserID, testOrgID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	// Expiración -1 minuto: ya vencido al momento de la petición.
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, "admin", testIssuer, -1)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenSinOrg_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "/protected", tokenFor(t, "", "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token sin organización no sirve para ninguna operación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireFeature
// ──────────────────────────────────────────────────────────────────────────────

func buildFeatureApp(checker *stubFeatureChecker) *fiber.App {
	app := fiber.New()
	app.Get("/report",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireFeature(entity.FeatureExportReports, checker),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func TestRequireFeature_ActivoDejaPasar(t *testing.T) {
	app := buildFeatureApp(&stubFeatureChecker{active: true})
	resp := doRequest(t, app, "/report", tokenFor(t, testOrgID, "owner"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireFeature_InactivoRetorna403(t *testing.T) {
	app := buildFeatureApp(&stubFeatureChecker{active: false})
	resp := doRequest(t, app, "/report", tokenFor(t, testOrgID, "owner"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FEATURE_DISABLED")
}

func TestRequireFeature_FalloDeInfraRetorna503(t *testing.T) {
	app := buildFeatureApp(&stubFeatureChecker{err: errors.New("db caída")})
	resp := doRequest(t, app, "/report", tokenFor(t, testOrgID, "owner"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FEATURE_CHECK_FAILED")
}

func TestRequireFeature_SinAuthNoLlegaAlChecker(t *testing.T) {
	checker := &stubFeatureChecker{active: true}
	app := buildFeatureApp(checker)
	resp := doRequest(t, app, "/report", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin token el AuthMiddleware corta antes del feature check")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad de generate/parse con org y rol
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConOrgYRol(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, "staff", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, orgID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testOrgID, orgID)
	assert.Equal(t, "staff", role)
}

func TestJWT_SecretVacioEsError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testOrgID, "staff", testIssuer, testExpMin)
	assert.Error(t, err)

	_, _, _, err = pkgjwt.Parse("", "lo.que.sea")
	assert.Error(t, err)
}
