package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	engine := gin.New()
	engine.Use(rl.Middleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func sendFrom(engine *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 2)
		frozen := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return frozen }
		engine := newLimitedEngine(rl)

		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.1:1234").Code)

		w := sendFrom(engine, "10.0.0.1:1234")
		require.Equal(t, http.StatusTooManyRequests, w.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "HTTP-010001", body.Code)
	})

	t.Run("limits each client separately", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 1)
		frozen := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return frozen }
		engine := newLimitedEngine(rl)

		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, sendFrom(engine, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.2:1234").Code)
	})

	t.Run("refills over time", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 1)
		current := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return current }
		engine := newLimitedEngine(rl)

		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, sendFrom(engine, "10.0.0.1:1234").Code)

		current = current.Add(time.Second)
		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.1:1234").Code)
	})

	t.Run("reset forgets every client", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 1)
		frozen := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return frozen }
		engine := newLimitedEngine(rl)

		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.1:1234").Code)
		rl.Reset()
		assert.Equal(t, http.StatusOK, sendFrom(engine, "10.0.0.1:1234").Code)
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter()
	current := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	rl.allow("idle")
	current = current.Add(2 * time.Minute)
	rl.allow("active")

	current = current.Add(90 * time.Second)
	rl.Cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "idle")
	assert.Contains(t, rl.visitors, "active")
}

func TestRateLimiter_Run(t *testing.T) {
	rl := NewRateLimiter()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- rl.Run(ctx, 5*time.Millisecond)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
