package utilities

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg-maturity-backend/internal/config"
	"esg-maturity-backend/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testTokens() *TokenManager {
	return NewTokenManager(config.AuthenticationConfig{
		AccessSecret:     "access",
		RefreshSecret:    "refresh",
		AccessTTLMinutes: 15,
		RefreshTTLHours:  24,
	})
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := testTokens()
	user := &model.User{ID: 7, Email: "ana@prefeitura.local", Role: model.RoleAdmin}

	access, refresh, err := tm.GenerateTokens(user)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(access, false)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	_, err = tm.ValidateToken(access, true)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err = tm.ValidateToken(refresh, true)
	require.NoError(t, err)
	assert.Equal(t, "ana@prefeitura.local", claims.Email)

	_, err = tm.ValidateToken(refresh, false)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := testTokens()
	access, _, err := tm.GenerateTokens(&model.User{ID: 1})
	require.NoError(t, err)

	tm.now = func() time.Time { return time.Now().Add(time.Hour) }

	_, err = tm.ValidateToken(access, false)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := testTokens().ValidateToken("not-a-token", false)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newAuthRouter(tm *TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(tm))
	r.GET("/me", func(c *gin.Context) {
		uid, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": uid})
	})
	r.GET("/admin", RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tm := testTokens()
	r := newAuthRouter(tm)
	respondent, _, err := tm.GenerateTokens(&model.User{ID: 3, Role: model.RoleRespondent})
	require.NoError(t, err)
	admin, _, err := tm.GenerateTokens(&model.User{ID: 4, Role: model.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"bad token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "/me", "Bearer " + respondent, http.StatusOK},
		{"respondent on admin route", "/admin", "Bearer " + respondent, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + admin, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.Use(RateLimitMiddleware(rl))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_Prune(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.idle = 0
	rl.Allow("a")
	time.Sleep(time.Millisecond)

	assert.Equal(t, 1, rl.Prune())
	assert.Empty(t, rl.clients)
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var calls int32
	bus.Subscribe(EventAssessmentSubmitted, func(ev Event) {
		assert.Equal(t, "abc", ev.Data)
		atomic.AddInt32(&calls, 1)
	})
	bus.Subscribe(EventAssessmentSubmitted, func(ev Event) {
		panic("boom")
	})
	bus.Subscribe("other", func(ev Event) {
		atomic.AddInt32(&calls, 100)
	})

	bus.Publish(EventAssessmentSubmitted, "abc")
	bus.Drain()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLogging(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SetupLogging(config.LoggingConfig{Dir: dir, Level: "INFO", MaxSizeMB: 1}))

	Debug("hidden %d", 1)
	Info("visible %d", 2)
	Error("failure %d", 3)
	CloseLogging()

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "INFO: ")
	assert.Contains(t, string(info), "visible 2")
	assert.Contains(t, string(info), "TestLogging")
	assert.NotContains(t, string(info), "hidden")

	errs, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errs), "failure 3")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("whatever"))
}
