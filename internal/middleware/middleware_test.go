package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Correlation", utils.CorrelationIDFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestCorrelationIDMiddleware_EchoesIncomingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.HeaderRequestID, "abc-123")
	rr := httptest.NewRecorder()

	CorrelationIDMiddleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(utils.HeaderRequestID))
	assert.Equal(t, "abc-123", rr.Header().Get("X-Seen-Correlation"))
}

func TestCorrelationIDMiddleware_GeneratesWhenAbsent(t *testing.T) {
	rr := httptest.NewRecorder()
	CorrelationIDMiddleware(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rr.Header().Get(utils.HeaderRequestID)
	require.Len(t, id, 36)
	assert.Equal(t, id, rr.Header().Get("X-Seen-Correlation"))
}

func TestAccessLogMiddleware_RecordsStatus(t *testing.T) {
	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rr := httptest.NewRecorder()
	AccessLogMiddleware(teapot).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestInMemoryRateLimitStore_SlidingWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewInMemoryRateLimitStore()
	store.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, err := store.IncrementAndCheck(ctx, "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i)
	}
	ok, _ := store.IncrementAndCheck(ctx, "ip:1.2.3.4", 3, time.Minute)
	assert.False(t, ok)

	ok, _ = store.IncrementAndCheck(ctx, "ip:5.6.7.8", 3, time.Minute)
	assert.True(t, ok, "keys are independent")

	now = now.Add(61 * time.Second)
	ok, _ = store.IncrementAndCheck(ctx, "ip:1.2.3.4", 3, time.Minute)
	assert.True(t, ok, "window slid past the earlier requests")
}

func TestInMemoryRateLimitStore_CleanupExpiredDropsIdleKeys(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewInMemoryRateLimitStore()
	store.now = func() time.Time { return now }

	_, _ = store.IncrementAndCheck(ctx, "ip:1.2.3.4", 3, time.Minute)
	now = now.Add(30 * time.Second)
	_, _ = store.IncrementAndCheck(ctx, "ip:5.6.7.8", 3, time.Minute)

	require.NoError(t, store.CleanupExpired(ctx))
	assert.Len(t, store.hits, 2, "both keys still inside the window")

	now = now.Add(45 * time.Second)
	require.NoError(t, store.CleanupExpired(ctx))
	assert.Len(t, store.hits, 1)
	assert.Contains(t, store.hits, "ip:5.6.7.8")

	now = now.Add(time.Hour)
	require.NoError(t, store.CleanupExpired(ctx))
	assert.Empty(t, store.hits)

	ok, err := store.IncrementAndCheck(ctx, "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "a forgotten key starts a fresh window")
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(NewInMemoryRateLimitStore(), 2, time.Minute)(okHandler())

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/property", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001").Code)

	rr := send("10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), utils.ErrCodeRateLimitExceeded)

	rr = send("not-an-address")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), utils.ErrCodeUnknownClient)
}

type failingStore struct{}

func (failingStore) IncrementAndCheck(context.Context, string, int, time.Duration) (bool, error) {
	return false, errors.New("store down")
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	rr := httptest.NewRecorder()
	RateLimitMiddleware(failingStore{}, 1, time.Minute)(okHandler()).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
