package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// RateLimitStore counts requests per key.
type RateLimitStore interface {
	// IncrementAndCheck records one request for key and reports whether it is
	// still within limit for the trailing window.
	IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimitMiddleware rejects callers that exceed limit requests per window.
// Callers whose address cannot be determined are rejected outright.
func RateLimitMiddleware(store RateLimitStore, limit int, window time.Duration) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(window.Seconds()))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := utils.ClientIdentifier(r)
			if clientIP == "" {
				utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeUnknownClient,
					"Unable to identify client", nil, utils.ErrUnknownClient)
				return
			}

			allowed, err := store.IncrementAndCheck(r.Context(), "ip:"+clientIP, limit, window)
			if err != nil {
				// Fail open; the limiter must not take the API down with it.
				utils.LoggerFromContext(r.Context()).WithError(err).Error("Rate limit check failed")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				utils.LoggerFromContext(r.Context()).Warnf("Rate limit exceeded for %s", clientIP)
				w.Header().Set("Retry-After", retryAfter)
				utils.RespondErrorWithCode(w, http.StatusTooManyRequests, utils.ErrCodeRateLimitExceeded,
					"Too many requests", nil, utils.ErrRateLimitExceeded)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// InMemoryRateLimitStore keeps a sliding window of request timestamps per key.
type InMemoryRateLimitStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time

	// longest window seen so far; CleanupExpired drops keys idle for longer
	maxWindow time.Duration
}

func NewInMemoryRateLimitStore() *InMemoryRateLimitStore {
	return &InMemoryRateLimitStore{hits: make(map[string][]time.Time), now: time.Now}
}

func (s *InMemoryRateLimitStore) IncrementAndCheck(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-window)
	if window > s.maxWindow {
		s.maxWindow = window
	}

	recent := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= limit {
		s.hits[key] = recent
		return false, nil
	}
	s.hits[key] = append(recent, now)
	return true, nil
}

// CleanupExpired forgets every key with no hit inside the longest window used.
func (s *InMemoryRateLimitStore) CleanupExpired(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.maxWindow)
	for key, hits := range s.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(s.hits, key)
		}
	}
	return nil
}

