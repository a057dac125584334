package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder used for location fields of foreign-country entries.
const NoLocation = "-"

// Text accepts both JSON strings and numbers. The remote sheet returns
// numeric-looking cells (postal codes, distances) as numbers.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Location describes where a postal code lies relative to the venue.
type Location struct {
	Bundesland string `json:"bundesland"`
	Landkreis  string `json:"landkreis"`
	Luftlinie  string `json:"luftlinie"`
}

// ForeignLocation is used for visitors from outside Germany.
func ForeignLocation() Location {
	return Location{Bundesland: NoLocation, Landkreis: NoLocation, Luftlinie: NoLocation}
}

// Entry is a single visitor-count record.
type Entry struct {
	PLZ        Text `json:"plz"`
	Bundesland Text `json:"bundesland"`
	Landkreis  Text `json:"landkreis"`
	Luftlinie  Text `json:"luftlinie"`
	Anzahl     int  `json:"anzahl"`
}

// NewEntry builds an entry from a title (postal code or country) and its location.
func NewEntry(title string, loc Location, count int) Entry {
	return Entry{
		PLZ:        Text(title),
		Bundesland: Text(loc.Bundesland),
		Landkreis:  Text(loc.Landkreis),
		Luftlinie:  Text(loc.Luftlinie),
		Anzahl:     count,
	}
}

// MonthlyEntry is an Entry tagged with the day it was recorded on.
type MonthlyEntry struct {
	Entry
	Date string `json:"date"`
}

// PLZTotal holds the summed visitor count of one postal code.
type PLZTotal struct {
	Bundesland  string `json:"bundesland"`
	Landkreis   string `json:"landkreis"`
	Luftlinie   string `json:"luftlinie"`
	TotalAmount int    `json:"totalAmount"`
}

// PLZData maps postal code to aggregated totals.
type PLZData map[string]PLZTotal

// MonthlyResult maps the date string delivered by the API to that day's totals.
type MonthlyResult map[string]PLZData

// anzahl may arrive as "3" from hand-edited sheets.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	var raw struct {
		plain
		Anzahl json.RawMessage `json:"anzahl"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Entry(raw.plain)
	e.Anzahl = 0
	if len(raw.Anzahl) == 0 || string(raw.Anzahl) == "null" {
		return nil
	}
	var count Text
	if err := count.UnmarshalJSON(raw.Anzahl); err != nil {
		return err
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(string(count)), 64)
	if err != nil {
		return fmt.Errorf("invalid anzahl %q: %w", count, err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return fmt.Errorf("invalid anzahl %q: not a whole number", count)
	}
	e.Anzahl = int(n)
	return nil
}

// Entry's decoder would otherwise be promoted and drop the date.
func (m *MonthlyEntry) UnmarshalJSON(data []byte) error {
	if err := m.Entry.UnmarshalJSON(data); err != nil {
		return err
	}
	var d struct {
		Date Text `json:"date"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	m.Date = string(d.Date)
	return nil
}
