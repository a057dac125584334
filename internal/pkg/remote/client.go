// Package remote talks to the spreadsheet backend that stores all entries.
// Every call is a JSON POST to one URL, the operation is selected by "path".
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/plzerfassung/plzerfassung/app/models"
)

const (
	PathAdd      = "add"
	PathGetDay   = "getDay"
	PathGetMonth = "getMonth"
	PathCheckPW  = "checkpw"
)

// MonthAnchorDay is the day of month sent for month queries.
const MonthAnchorDay = 5

// jsDateLayout matches JSON.stringify(new Date()).
const jsDateLayout = "2006-01-02T15:04:05.000Z07:00"

type request struct {
	Path     string `json:"path"`
	Data     any    `json:"data"`
	Password string `json:"password"`
}

type dateData struct {
	Date string `json:"date"`
}

// Client is safe for concurrent use.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Add records a single entry.
func (c *Client) Add(ctx context.Context, password string, entry models.Entry) error {
	_, err := c.post(ctx, PathAdd, entry, password)
	return err
}

// CheckPassword succeeds when the backend accepts the password.
func (c *Client) CheckPassword(ctx context.Context, password string) error {
	_, err := c.post(ctx, PathCheckPW, struct{}{}, password)
	return err
}

// GetDay returns the raw entries of the day containing day.
func (c *Client) GetDay(ctx context.Context, password string, day time.Time) ([]models.Entry, error) {
	body, err := c.post(ctx, PathGetDay, dateData{Date: FormatDate(day)}, password)
	if err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", PathGetDay, err)
	}
	return entries, nil
}

// GetMonth returns the raw, date-tagged entries of the month containing month.
func (c *Client) GetMonth(ctx context.Context, password string, month time.Time) ([]models.MonthlyEntry, error) {
	body, err := c.post(ctx, PathGetMonth, dateData{Date: FormatDate(MonthAnchor(month))}, password)
	if err != nil {
		return nil, err
	}
	var entries []models.MonthlyEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", PathGetMonth, err)
	}
	return entries, nil
}

// MonthAnchor returns midnight of MonthAnchorDay in t's month and location.
func MonthAnchor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), MonthAnchorDay, 0, 0, 0, 0, t.Location())
}

// FormatDate encodes t the way a browser serialises a Date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(jsDateLayout)
}

func (c *Client) post(ctx context.Context, path string, data any, password string) ([]byte, error) {
	if c.endpoint == "" {
		return nil, errors.New("remote api url is not configured")
	}

	payload, err := json.Marshal(request{Path: path, Data: data, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s request: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Status: statusText(resp)}
	}
	return body, nil
}

// resp.Status is "403 Forbidden"; keep only the reason phrase.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
