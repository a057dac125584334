package repository

import (
	"context"
	"time"

	"github.com/plzerfassung/plzerfassung/app/models"
)

// VisitorRepository defines the operations on recorded visitor counts.
// Every call carries the shared password the backend authenticates with.
type VisitorRepository interface {
	Add(ctx context.Context, password string, entry models.Entry) error
	GetDay(ctx context.Context, password string, day time.Time) ([]models.Entry, error)
	GetMonth(ctx context.Context, password string, month time.Time) ([]models.MonthlyEntry, error)
	CheckPassword(ctx context.Context, password string) error
}

// ReportCache stores serialized backend responses.
type ReportCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
}
