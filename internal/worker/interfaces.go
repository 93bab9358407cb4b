package worker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

type Servicer interface {
	ExpireOlderThan(ctx context.Context, ttl time.Duration) (int64, error)
}
