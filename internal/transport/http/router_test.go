package http

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/go-api-posts/internal/config"
	jwtinfra "github.com/go-api-posts/internal/infrastructure/jwt"
	"github.com/go-api-posts/internal/infrastructure/memory"
	appmiddleware "github.com/go-api-posts/internal/transport/http/middleware"
)

func testConfig() *config.Config {
	return &config.Config{
		APIBasePath:    "/api",
		StorageDriver:  config.StorageMemory,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		AllowedOrigins: []string{"*"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, deps *Deps) http.Handler {
	t.Helper()
	if deps.Posts == nil {
		deps.Posts = memory.NewPostStore(nil)
	}
	if deps.RateLimiter == nil {
		deps.RateLimiter = appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	t.Cleanup(deps.RateLimiter.Stop)
	h, err := NewRouter(cfg, deps, nil)
	require.NoError(t, err)
	return h
}

func do(h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_PostLifecycle(t *testing.T) {
	h := newTestRouter(t, testConfig(), &Deps{})

	rr := do(h, http.MethodGet, "/api/post", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(h, http.MethodPost, "/api/post", `{"title":"My title","content":"My content"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var created struct {
		ID      int64  `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "My title", created.Title)

	rr = do(h, http.MethodPost, "/api/post", `{"title":"My title","content":"Other"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":{"type":"duplicate-resource","messages":["Post with title \"My title\" already exists"]}}`, rr.Body.String())

	rr = do(h, http.MethodGet, "/api/post", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	path := "/api/post/" + jsonNumber(created.ID)
	rr = do(h, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(h, http.MethodPut, path, `{"title":"Renamed","content":"Edited"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Renamed"`)

	rr = do(h, http.MethodGet, "/api/post/999", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = do(h, http.MethodGet, "/api/post/abc", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_CreateArgumentErrors(t *testing.T) {
	h := newTestRouter(t, testConfig(), &Deps{})

	rr := do(h, http.MethodPost, "/api/post", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":{"type":"argument-validation","messages":["title is required","content is required"]}}`, rr.Body.String())

	rr = do(h, http.MethodPost, "/api/post", `{"title":"`+strings.Repeat("x", 33)+`","content":"c"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "title can't be longer than 32 characters")

	rr = do(h, http.MethodPost, "/api/post", `title=x`, "Content-Type", "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	h := newTestRouter(t, testConfig(), &Deps{})

	rr := do(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","storage":"memory"}`, rr.Body.String())

	rr = do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "posts_api_http_requests_total")
}

func TestRouter_WriteEndpointsRequireToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	verifier, err := jwtinfra.NewVerifierFromPEM(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
	require.NoError(t, err)

	cfg := testConfig()
	cfg.JWTRequiredRole = "editor"
	h := newTestRouter(t, cfg, &Deps{TokenVerifier: verifier})

	sign := func(role string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, &jwtinfra.Claims{
			Role:             role,
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		}).SignedString(key)
		require.NoError(t, err)
		return "Bearer " + s
	}
	body := `{"title":"t","content":"c"}`

	rr := do(h, http.MethodPost, "/api/post", body)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"unauthorized"`)

	rr = do(h, http.MethodPost, "/api/post", body, "Authorization", sign("reader"))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = do(h, http.MethodPost, "/api/post", body, "Authorization", sign("editor"))
	assert.Equal(t, http.StatusOK, rr.Code)

	// Reads stay public.
	rr = do(h, http.MethodGet, "/api/post", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_WriteEndpointsAreRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	h := newTestRouter(t, cfg, &Deps{})

	rr := do(h, http.MethodPost, "/api/post", `{"title":"a","content":"c"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = do(h, http.MethodPost, "/api/post", `{"title":"b","content":"c"}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	rr = do(h, http.MethodGet, "/api/post", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
