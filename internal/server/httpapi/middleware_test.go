package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foundergrid/perkmarket/internal/logging"
	"github.com/foundergrid/perkmarket/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var testSecret = []byte("test-secret")

func issueToken(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := auth.IssueAccessToken(userID, role, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}
	return tok
}

// guardedRouter mounts the guards in front of a probe handler that reports
// the claims it sees.
func guardedRouter(withFounderGuard bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{ActiveSessionGuard(testSecret)}
	if withFounderGuard {
		handlers = append(handlers, VerifiedFounderGuard())
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := sessionClaims(c)
		c.JSON(http.StatusOK, gin.H{"uid": claims.UserID, "role": claims.Role})
	})
	r.GET("/probe", handlers...)
	return r
}

func TestActiveSessionGuard_MissingHeader(t *testing.T) {
	r := guardedRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestActiveSessionGuard_NonBearerScheme(t *testing.T) {
	r := guardedRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestActiveSessionGuard_MalformedToken(t *testing.T) {
	r := guardedRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestActiveSessionGuard_ExpiredToken(t *testing.T) {
	r := guardedRouter(false)

	tok, err := auth.IssueAccessToken("u-1", "founder", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d", w.Code)
	}
}

func TestActiveSessionGuard_ValidToken_AttachesClaims(t *testing.T) {
	r := guardedRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "u-42", "founder"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"uid":"u-42"`) || !strings.Contains(body, `"role":"founder"`) {
		t.Fatalf("claims not attached: %s", body)
	}
}

func TestVerifiedFounderGuard_RejectsInitiate(t *testing.T) {
	r := guardedRouter(true)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "u-1", "initiate"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for initiate role, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "verification required") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestVerifiedFounderGuard_AllowsFounderAndAdmin(t *testing.T) {
	r := guardedRouter(true)

	for _, role := range []string{"founder", "admin"} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "u-1", role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for role %s, got %d", role, w.Code)
		}
	}
}

