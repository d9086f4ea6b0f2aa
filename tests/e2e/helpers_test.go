//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/stash-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/stash-backend/internal/app"
	"github.com/heartmarshall/stash-backend/internal/config"
)

// testServer wraps an httptest server running the full application stack.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   168 * time.Hour,
			PasswordHashCost: 4,
			MinPasswordLen:   6,
		},
		Metadata: config.MetadataConfig{Timeout: time.Second, UserAgent: "stash-e2e", MaxTitleLen: 200},
		Plan: config.PlanConfig{
			ProDuration:          720 * time.Hour,
			ItemWarningThreshold: 45,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}
}

// setupTestServer bootstraps the application on a real PostgreSQL container
// (shared via testhelper). The LLM client is disabled.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	srv := httptest.NewServer(app.NewHandler(testConfig(), pool, logger))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// request sends a JSON request and decodes the JSON response into a generic value.
func (ts *testServer) request(t *testing.T, method, path string, body any, token string) (int, any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// object is request for endpoints that answer with a JSON object.
func (ts *testServer) object(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()
	status, out := ts.request(t, method, path, body, token)
	obj, ok := out.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T", out)
	return status, obj
}

// list is request for endpoints that answer with a JSON array.
func (ts *testServer) list(t *testing.T, method, path string, token string) (int, []any) {
	t.Helper()
	status, out := ts.request(t, method, path, nil, token)
	arr, ok := out.([]any)
	require.True(t, ok, "expected JSON array, got %T", out)
	return status, arr
}

// registerUser creates a fresh user through the API and returns its token.
func registerUser(t *testing.T, ts *testServer) (string, string) {
	t.Helper()

	email := fmt.Sprintf("test-%s@example.com", uuid.NewString()[:8])
	status, body := ts.object(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, status, "register: %v", body)

	token, ok := body["access_token"].(string)
	require.True(t, ok)
	return token, email
}

// saveItem stores an item with explicit title and platform so that no page
// metadata is fetched.
func saveItem(t *testing.T, ts *testServer, token string, fields map[string]any) map[string]any {
	t.Helper()

	body := map[string]any{
		"url":      "https://example.com/" + uuid.NewString(),
		"title":    "Saved page",
		"platform": "Web",
	}
	for k, v := range fields {
		body[k] = v
	}

	status, item := ts.object(t, http.MethodPost, "/api/items", body, token)
	require.Equal(t, http.StatusOK, status, "save item: %v", item)
	return item
}

func detail(body map[string]any) string {
	d, _ := body["detail"].(string)
	return d
}
