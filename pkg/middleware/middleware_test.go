package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/pkg/auth"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestSecurityHeadersDefaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := SecurityHeaders(SecurityHeadersConfig{})(okHandler)
	require.NoError(t, h(c))

	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Permissions-Policy"), "camera=()")
}

func TestSecurityHeadersCustomCSP(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := SecurityHeaders(SecurityHeadersConfig{ContentSecurityPolicy: "default-src 'none'"})(okHandler)
	require.NoError(t, h(c))

	assert.Equal(t, "default-src 'none'", rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Referrer-Policy"))
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 2)
	h := rl.Middleware()(okHandler)

	status := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.1.2.3:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, status())
	assert.Equal(t, http.StatusOK, status())
	assert.Equal(t, http.StatusTooManyRequests, status())
}

func TestRateLimiterIsPerIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 1)
	h := rl.Middleware()(okHandler)

	status := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, status("10.0.0.1:1"))
	assert.Equal(t, http.StatusTooManyRequests, status("10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, status("10.0.0.2:1"))
}

func TestJWTAuth(t *testing.T) {
	const secret = "test-secret"
	e := echo.New()

	var gotUserID int
	var gotEmail string
	h := JWTAuth(secret)(func(c echo.Context) error {
		gotUserID = c.Get("user_id").(int)
		gotEmail = c.Get("user_email").(string)
		return c.String(http.StatusOK, "ok")
	})

	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h(c))
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, call("").Code)
	assert.Equal(t, http.StatusUnauthorized, call("Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, call("Bearer garbage").Code)

	token, err := auth.GenerateJWT(42, "ops@example.com", "admin", secret, 1)
	require.NoError(t, err)

	rec := call("Bearer " + token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, gotUserID)
	assert.Equal(t, "ops@example.com", gotEmail)
}
