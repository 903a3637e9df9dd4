package services

import (
	"context"

	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// RateLimitCleaner is implemented by every rate limit store.
type RateLimitCleaner interface {
	CleanupExpired(ctx context.Context) error
}

// RateLimitCleanupService purges rate limit counters whose window has closed.
type RateLimitCleanupService struct {
	store RateLimitCleaner
}

func NewRateLimitCleanupService(store RateLimitCleaner) *RateLimitCleanupService {
	return &RateLimitCleanupService{store: store}
}

func (s *RateLimitCleanupService) Cleanup(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	if err := s.store.CleanupExpired(ctx); err != nil {
		logger.WithError(err).Error("Failed to clean up expired rate limit counters")
		return err
	}

	logger.Debug("Rate limit counter cleanup completed")
	return nil
}
