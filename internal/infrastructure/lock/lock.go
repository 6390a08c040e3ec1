// Package lock provides per-estimate mutual exclusion for ledger writes. The
// local locker serves a single process; the Redis locker spans replicas.
package lock

import (
	"fmt"

	"estimate_engine/internal/domain/entities"
)

// ErrLockTimeout is returned when the key stays held past the wait budget.
var ErrLockTimeout = fmt.Errorf("%w: estimate is busy, retry shortly", entities.ErrStateConflict)
