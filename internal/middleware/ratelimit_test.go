package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gantt-task-board/config"
	"gantt-task-board/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

func newLimitedRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{RateLimit: config.RateLimitConfig{PerMin: perMin}}
	mw := middleware.New(&mockLogger{}, cfg)

	r := gin.New()
	r.POST("/limited", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows Within Burst", func(t *testing.T) {
		r := newLimitedRouter(5)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Rejects Past Burst", func(t *testing.T) {
		r := newLimitedRouter(2)

		var last int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
			last = w.Code
		}
		if last != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %d", last)
		}
	})
}
