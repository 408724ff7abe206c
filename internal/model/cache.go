package model

import "context"

// Cache is a shared string cache keyed by name. Writers race last-write-wins;
// values are recomputable so staleness is acceptable.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Delete(ctx context.Context, key string)
}
