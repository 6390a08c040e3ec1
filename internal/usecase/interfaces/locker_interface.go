package interfaces

import "context"

// ILocker serializes work on a single key (one estimate) across callers.
type ILocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
