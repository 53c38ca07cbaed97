package throttle

import (
	"context"
	"time"
)

// Throttle rate-limits named operations. A key identifies the operation and
// subject, for example "signup_resend:ada@example.com".
type Throttle interface {
	// Acquire attempts to take the slot for key. It returns true when the
	// caller may proceed, false when the key is still inside its cooldown
	// window. The slot is held for ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
