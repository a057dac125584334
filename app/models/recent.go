package models

import "time"

// MaxRecentEntries bounds the per-session submission history.
const MaxRecentEntries = 10

// RecentEntry is a submission shown under the form.
type RecentEntry struct {
	Title  string    `json:"title"`
	Count  int       `json:"count"`
	SentAt time.Time `json:"sent_at"`
}

// PrependRecent puts e first and drops the oldest entries beyond MaxRecentEntries.
func PrependRecent(list []RecentEntry, e RecentEntry) []RecentEntry {
	out := make([]RecentEntry, 0, len(list)+1)
	out = append(out, e)
	out = append(out, list...)
	if len(out) > MaxRecentEntries {
		out = out[:MaxRecentEntries]
	}
	return out
}
