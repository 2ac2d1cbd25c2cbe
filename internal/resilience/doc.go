// Package resilience provides fault tolerance patterns for the application.
//
// The circuitbreaker subpackage wraps github.com/sony/gobreaker and offers a
// repository.Storage decorator so that a failing database is reported as
// unavailable quickly instead of tying up request goroutines:
//
//	store = circuitbreaker.NewGuardedStorage(store, circuitbreaker.StorageConfig())
//	_, err := store.Articles().Get(ctx, 1) // entity.ErrStorageUnavailable while open
package resilience
