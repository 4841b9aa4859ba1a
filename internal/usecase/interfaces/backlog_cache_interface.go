package interfaces

import (
	"context"
	"time"
)

// IBacklogCache is a short-TTL cache in front of the reconciler's backlog
// gauge (e.g. Redis). A miss returns found=false, never an error the caller
// must act on.
type IBacklogCache interface {
	GetCount(ctx context.Context, key string) (count int, found bool, err error)
	SetCount(ctx context.Context, key string, count int, ttl time.Duration) error
}
