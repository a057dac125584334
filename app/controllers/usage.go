package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Counter records daily usage statistics.
type Counter interface {
	Add(ctx context.Context, day time.Time, field string, n int64) error
}

// usage is embedded by controllers that report statistics. Without a
// counter every record call is a no-op.
type usage struct {
	counter Counter
}

// SetCounter enables usage statistics.
func (u *usage) SetCounter(counter Counter) {
	u.counter = counter
}

func (u *usage) record(ctx context.Context, day time.Time, field string, n int64) {
	if u.counter == nil {
		return
	}
	if err := u.counter.Add(ctx, day, field, n); err != nil {
		log.Warnf("[Counter] %v", err)
	}
}
