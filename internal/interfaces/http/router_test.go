package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/Aixtrade/nothing/internal/config"
	"github.com/Aixtrade/nothing/internal/domain/nothing"
	"github.com/Aixtrade/nothing/internal/interfaces/http/middleware"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{
		Config: &config.Config{App: config.AppConfig{Env: "test"}},
		Logger: zap.NewNop(),
	}).Setup()
}

func assertNothing(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected json content type, got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"result": "nothing"}, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestRouterScenarios(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "root", method: http.MethodGet, path: "/"},
		{name: "arbitrary path", method: http.MethodGet, path: "/some/arbitrary/path"},
		{name: "deeply nested", method: http.MethodGet, path: "/api/v1/users/123/posts/456/comments"},
		{name: "post with body", method: http.MethodPost, path: "/submit", body: `{"anything":true}`},
		{name: "anything", method: http.MethodGet, path: "/anything"},
		{name: "trailing slash", method: http.MethodGet, path: "/some/path/"},
		{name: "query string", method: http.MethodGet, path: "/search?q=something&page=2"},
		{name: "health path is not special", method: http.MethodGet, path: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			assertNothing(t, resp)
		})
	}
}

func TestRouterEveryMethod(t *testing.T) {
	r := setupRouter(t)

	methods := []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
		http.MethodTrace,
		"PROPFIND",
		"BREW",
	}

	for _, method := range methods {
		for _, path := range []string{"/", "/a", "/a/b/c/d/e/f"} {
			t.Run(method+" "+path, func(t *testing.T) {
				resp := httptest.NewRecorder()
				r.ServeHTTP(resp, httptest.NewRequest(method, path, nil))
				assertNothing(t, resp)
			})
		}
	}
}

func TestRouterHeadHasNoBodyButSucceeds(t *testing.T) {
	srv := httptest.NewServer(setupRouter(t))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodHead, srv.URL+"/x/y", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestRouterIgnoresRequestContent(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/items/1", strings.NewReader("not json at all"))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Authorization", "Bearer whatever")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assertNothing(t, resp)
	if got := resp.Body.String(); got != `{"result":"nothing"}` {
		t.Fatalf("expected exact body, got %s", got)
	}
}

func TestRouterCORS(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://example.com")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assertNothing(t, resp)
	if got := resp.Header().Get("access-control-allow-origin"); got != "*" {
		t.Fatalf("expected access-control-allow-origin *, got %q", got)
	}
	if got := resp.Header().Get(middleware.RequestIDHeader); got == "" {
		t.Fatal("expected request id header")
	}
}

func TestRouterPreflight(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/users", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	req.Header.Set("Access-Control-Request-Headers", "authorization")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assertNothing(t, resp)
	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "DELETE",
		"Access-Control-Allow-Headers": "authorization",
	}
	for k, v := range want {
		if got := resp.Header().Get(k); got != v {
			t.Errorf("%s: got %q, want %q", k, got, v)
		}
	}
}

func TestRouterMatchesDomainPayload(t *testing.T) {
	r := setupRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	var got nothing.Payload
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if diff := cmp.Diff(nothing.NewPayload(), got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}
