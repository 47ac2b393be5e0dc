// Package service holds the listing, favorite and account logic between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/cache"
)

var (
	// ErrInvalidInput marks a request the caller must correct.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden marks a write to a listing owned by someone else.
	ErrForbidden = errors.New("not the owner")
	// ErrInvalidCredentials marks a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const invalidateTimeout = 5 * time.Second

// invalidator drops cached listing queries after writes.
type invalidator struct {
	cache  cache.PropertyCache
	logger *zap.Logger
	wg     sync.WaitGroup
}

// invalidate drops the cache in the background.
func (i *invalidator) invalidate() {
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		i.invalidateNow(context.Background())
	}()
}

// invalidateNow drops the cache before returning. It outlives a cancelled
// request context so a client that went away still leaves a fresh cache.
func (i *invalidator) invalidateNow(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()
	if err := i.cache.Invalidate(ctx); err != nil {
		i.logger.Warn("Failed to invalidate property cache", zap.Error(err))
	}
}

// Wait blocks until pending cache invalidations finish.
func (i *invalidator) Wait() { i.wg.Wait() }
