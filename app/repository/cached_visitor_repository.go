package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/plzerfassung/plzerfassung/app/models"
	"github.com/plzerfassung/plzerfassung/internal/pkg/cache"
	"github.com/plzerfassung/plzerfassung/internal/pkg/remote"
)

// cachedVisitorRepository serves reads of closed periods (days before
// today, months before the current one) from a cache. Open periods can
// still receive entries and always go to the backend.
type cachedVisitorRepository struct {
	next  VisitorRepository
	cache ReportCache
	ttl   time.Duration
	now   func() time.Time
}

// NewCachedVisitorRepository wraps next with a read cache.
func NewCachedVisitorRepository(next VisitorRepository, c ReportCache, ttl time.Duration, now func() time.Time) VisitorRepository {
	if now == nil {
		now = time.Now
	}
	return &cachedVisitorRepository{next: next, cache: c, ttl: ttl, now: now}
}

func (r *cachedVisitorRepository) Add(ctx context.Context, password string, entry models.Entry) error {
	return r.next.Add(ctx, password, entry)
}

func (r *cachedVisitorRepository) CheckPassword(ctx context.Context, password string) error {
	return r.next.CheckPassword(ctx, password)
}

func (r *cachedVisitorRepository) GetDay(ctx context.Context, password string, day time.Time) ([]models.Entry, error) {
	if !dayClosed(day, r.now()) {
		return r.next.GetDay(ctx, password, day)
	}

	key := cacheKey(remote.PathGetDay, day.Format("2006-01-02"), password)
	var entries []models.Entry
	if r.load(ctx, key, &entries) {
		return entries, nil
	}

	entries, err := r.next.GetDay(ctx, password, day)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, entries)
	return entries, nil
}

func (r *cachedVisitorRepository) GetMonth(ctx context.Context, password string, month time.Time) ([]models.MonthlyEntry, error) {
	if !monthClosed(month, r.now()) {
		return r.next.GetMonth(ctx, password, month)
	}

	key := cacheKey(remote.PathGetMonth, month.Format("2006-01"), password)
	var entries []models.MonthlyEntry
	if r.load(ctx, key, &entries) {
		return entries, nil
	}

	entries, err := r.next.GetMonth(ctx, password, month)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, entries)
	return entries, nil
}

// load never fails the request; a broken cache behaves like a miss.
func (r *cachedVisitorRepository) load(ctx context.Context, key string, dst any) bool {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Warnf("[ReportCache] read %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Warnf("[ReportCache] dropping corrupt entry %s: %v", key, err)
		return false
	}
	return true
}

func (r *cachedVisitorRepository) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warnf("[ReportCache] encode %s failed: %v", key, err)
		return
	}
	if err := r.cache.Set(ctx, key, string(raw), r.ttl); err != nil {
		log.Warnf("[ReportCache] write %s failed: %v", key, err)
	}
}

// The password hash keeps one session from reading data fetched with
// another session's password.
func cacheKey(path, period, password string) string {
	sum := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%s:%s:%s", path, period, hex.EncodeToString(sum[:8]))
}

func dayClosed(day, now time.Time) bool {
	now = now.In(day.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, day.Location())
	return day.Before(today)
}

func monthClosed(month, now time.Time) bool {
	now = now.In(month.Location())
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, month.Location())
	return month.Before(current)
}
