// Package observability provides hooks for metrics and tracing.
//
// Hooks are registered once at startup. Libraries emit events through the
// registered implementation, which defaults to a no-op, so nothing here
// depends on a particular metrics backend.
//
// # Usage
//
// Register hooks before running jobs:
//
//	observability.SetJobHooks(&myJobHooks{})
//	observability.SetStorageHooks(&myStorageHooks{})
//
// Libraries call hooks around the work they measure:
//
//	observability.Jobs().OnJobStart(ctx, "convert", input)
//	// ... run the job ...
//	observability.Jobs().OnJobComplete(ctx, "convert", input, len(outputs), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Job Hooks
// =============================================================================

// JobHooks receives events from the job runner.
type JobHooks interface {
	// OnRunStart fires once per job file, before any job runs.
	OnRunStart(ctx context.Context, runID string, jobs int)
	// OnRunComplete fires when the run ends, successfully or not.
	OnRunComplete(ctx context.Context, runID string, steps int, duration time.Duration, err error)

	OnJobStart(ctx context.Context, kind, input string)
	OnJobComplete(ctx context.Context, kind, input string, outputs int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the parsed-graph cache.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, path string)
	OnCacheMiss(ctx context.Context, path string)
}

// =============================================================================
// Storage Hooks
// =============================================================================

// StorageHooks receives events from object storage uploads.
type StorageHooks interface {
	// OnUpload records a finished upload. err is nil on success.
	OnUpload(ctx context.Context, bucket, key string, size int64, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopJobHooks is a no-op implementation of JobHooks.
type NoopJobHooks struct{}

func (NoopJobHooks) OnRunStart(context.Context, string, int)                                  {}
func (NoopJobHooks) OnRunComplete(context.Context, string, int, time.Duration, error)         {}
func (NoopJobHooks) OnJobStart(context.Context, string, string)                               {}
func (NoopJobHooks) OnJobComplete(context.Context, string, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)  {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string) {}

// NoopStorageHooks is a no-op implementation of StorageHooks.
type NoopStorageHooks struct{}

func (NoopStorageHooks) OnUpload(context.Context, string, string, int64, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	jobHooks     JobHooks     = NoopJobHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	storageHooks StorageHooks = NoopStorageHooks{}
	hooksMu      sync.RWMutex
)

// SetJobHooks registers custom job hooks. A nil value is ignored.
func SetJobHooks(h JobHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		jobHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetStorageHooks registers custom storage hooks. A nil value is ignored.
func SetStorageHooks(h StorageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storageHooks = h
	}
}

// Jobs returns the registered job hooks.
func Jobs() JobHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return jobHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Storage returns the registered storage hooks.
func Storage() StorageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storageHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	jobHooks = NoopJobHooks{}
	cacheHooks = NoopCacheHooks{}
	storageHooks = NoopStorageHooks{}
}
