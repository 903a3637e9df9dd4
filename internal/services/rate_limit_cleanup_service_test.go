package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	calls int
	err   error
}

func (c *countingCleaner) CleanupExpired(context.Context) error {
	c.calls++
	return c.err
}

func TestRateLimitCleanupService_Cleanup(t *testing.T) {
	cleaner := &countingCleaner{}
	svc := NewRateLimitCleanupService(cleaner)

	assert.NoError(t, svc.Cleanup(context.Background()))
	assert.NoError(t, svc.Cleanup(context.Background()))
	assert.Equal(t, 2, cleaner.calls)

	cleaner.err = errors.New("connection refused")
	assert.ErrorIs(t, svc.Cleanup(context.Background()), cleaner.err)
}
