package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	pkgAuth "github.com/polkiloo/tareffa/internal/pkg/auth"
	testhelpers "github.com/polkiloo/tareffa/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuthRequired(t *testing.T) {
	tests := []struct {
		name     string
		resolver testhelpers.IdentityResolverStub
		token    string
		want     int
	}{
		{name: "no token", token: "", want: http.StatusUnauthorized},
		{name: "invalid token", resolver: testhelpers.IdentityResolverStub{Err: pkgAuth.ErrInvalidToken}, token: "token", want: http.StatusUnauthorized},
		{name: "signed out", resolver: testhelpers.IdentityResolverStub{Err: domainErrors.ErrNotFound}, token: "token", want: http.StatusUnauthorized},
		{name: "storage failure", resolver: testhelpers.IdentityResolverStub{Err: context.DeadlineExceeded}, token: "token", want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(AuthRequired(tt.resolver))
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
			if resp := serveWithToken(router, tt.token); resp.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.Code)
			}
		})
	}

	var stored model.Identity
	var storedToken string
	router := gin.New()
	router.Use(AuthRequired(testhelpers.IdentityResolverStub{Identity: &model.Identity{ID: "user-123", Role: model.RoleClient}}))
	router.GET("/", func(c *gin.Context) {
		stored, _ = Identity(c)
		storedToken = c.GetString(TokenContextKey)
		c.Status(http.StatusOK)
	})
	resp := serveWithToken(router, "token")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stored.ID != "user-123" {
		t.Fatalf("expected identity user-123, got %q", stored.ID)
	}
	if storedToken != "token" {
		t.Fatalf("expected stored token, got %q", storedToken)
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name     string
		identity *model.Identity
		want     int
	}{
		{name: "anonymous", want: http.StatusUnauthorized},
		{name: "client", identity: &model.Identity{ID: "user-123", Role: model.RoleClient}, want: http.StatusForbidden},
		{name: "admin", identity: &model.Identity{ID: "admin-123", Role: model.RoleAdmin}, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.identity != nil {
					c.Set(IdentityContextKey, *tt.identity)
				}
			})
			router.Use(AdminOnly())
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
			if resp := serveWithToken(router, ""); resp.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.Code)
			}
		})
	}
}

func TestSetAndClearAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetAuthCookie(c, "token")
	if got := recorder.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Value != "token" || !cookies[0].HttpOnly {
		t.Fatalf("expected http only cookie with token, got %+v", cookies)
	}

	recorder = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(recorder)
	ClearAuthCookie(c)
	cleared := recorder.Result()
	t.Cleanup(func() {
		_ = cleared.Body.Close()
	})
	cookies = cleared.Cookies()
	if len(cookies) == 0 || cookies[0].Name != authCookieName || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := ExtractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := ExtractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}
	c.Request.Header.Del("Authorization")
	c.Request.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie"})
	if token := ExtractToken(c); token != "cookie" {
		t.Fatalf("expected token from cookie, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for corrupt gzip, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("data"))
	req.Header.Set("Content-Encoding", "br")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415 for unsupported encoding, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var levels []slog.Level
	var identities []string
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.LevelKey:
			levels = append(levels, a.Value.Any().(slog.Level))
		case "identity":
			identities = append(identities, a.Value.String())
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(func(c *gin.Context) {
		c.Set(IdentityContextKey, model.Identity{ID: "user-123", CreatedAt: time.Unix(0, 0)})
	})
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	if len(levels) != 2 || levels[0] != slog.LevelInfo || levels[1] != slog.LevelError {
		t.Fatalf("expected info then error, got %v", levels)
	}
	if len(identities) != 2 || identities[0] != "user-123" {
		t.Fatalf("expected identity attribute, got %v", identities)
	}
}
