package repositories

import (
	"context"
	"time"
)

// RateLimitRepository keeps fixed-window request counters in Postgres so every
// replica behind the same database enforces one shared limit.
type RateLimitRepository interface {
	// IncrementAndCheck counts one hit for key and reports whether the count
	// for the current window is still within limit.
	IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	// CleanupExpired drops counters whose window has closed.
	CleanupExpired(ctx context.Context) error
}

type rateLimitRepo struct {
	db DB
}

func NewRateLimitRepository(db DB) RateLimitRepository {
	return &rateLimitRepo{db: db}
}

const upsertRateLimitHit = `
    INSERT INTO rate_limit_counters (key, hits, window_ends_at)
    VALUES ($1, 1, NOW() + $2::interval)
    ON CONFLICT (key) DO UPDATE SET
        hits = CASE
            WHEN rate_limit_counters.window_ends_at < NOW() THEN 1
            ELSE rate_limit_counters.hits + 1
        END,
        window_ends_at = CASE
            WHEN rate_limit_counters.window_ends_at < NOW() THEN NOW() + $2::interval
            ELSE rate_limit_counters.window_ends_at
        END
    RETURNING hits
`

func (r *rateLimitRepo) IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	var hits int
	if err := r.db.QueryRow(ctx, upsertRateLimitHit, key, window).Scan(&hits); err != nil {
		return false, err
	}
	return hits <= limit, nil
}

func (r *rateLimitRepo) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM rate_limit_counters WHERE window_ends_at < NOW()`)
	return err
}
