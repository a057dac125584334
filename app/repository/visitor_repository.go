package repository

import (
	"context"
	"time"

	"github.com/plzerfassung/plzerfassung/app/models"
	"github.com/plzerfassung/plzerfassung/internal/pkg/remote"
)

// visitorRepository implements VisitorRepository on top of the remote backend
type visitorRepository struct {
	client *remote.Client
}

// NewVisitorRepository creates a new remote-backed visitor repository
func NewVisitorRepository(client *remote.Client) VisitorRepository {
	return &visitorRepository{client: client}
}

func (r *visitorRepository) Add(ctx context.Context, password string, entry models.Entry) error {
	return r.client.Add(ctx, password, entry)
}

func (r *visitorRepository) GetDay(ctx context.Context, password string, day time.Time) ([]models.Entry, error) {
	return r.client.GetDay(ctx, password, day)
}

func (r *visitorRepository) GetMonth(ctx context.Context, password string, month time.Time) ([]models.MonthlyEntry, error) {
	return r.client.GetMonth(ctx, password, month)
}

func (r *visitorRepository) CheckPassword(ctx context.Context, password string) error {
	return r.client.CheckPassword(ctx, password)
}
