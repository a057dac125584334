// Package plz resolves German postal codes to their district and the
// straight-line distance to the venue.
package plz

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2/log"

	"github.com/plzerfassung/plzerfassung/app/models"
)

//go:embed data/plz.json
var defaultData embed.FS

type record struct {
	Bundesland models.Text `json:"bundesland"`
	Landkreis  models.Text `json:"landkreis"`
	Luftlinie  models.Text `json:"luftlinie"`
}

// Directory is an immutable postal code lookup table.
type Directory struct {
	entries  map[string]models.Location
	embedded bool
}

// Load reads a JSON object keyed by postal code.
func Load(r io.Reader) (*Directory, error) {
	var raw map[string]record
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode postal code directory: %w", err)
	}

	entries := make(map[string]models.Location, len(raw))
	for code, rec := range raw {
		entries[code] = models.Location{
			Bundesland: rec.Bundesland.String(),
			Landkreis:  rec.Landkreis.String(),
			Luftlinie:  rec.Luftlinie.String(),
		}
	}
	return &Directory{entries: entries}, nil
}

// LoadFile loads the directory from path, or the embedded default when path is empty.
func LoadFile(path string) (*Directory, error) {
	if path == "" {
		f, err := defaultData.Open("data/plz.json")
		if err != nil {
			return nil, err
		}
		defer f.Close()
		dir, err := Load(f)
		if err != nil {
			return nil, err
		}
		dir.embedded = true
		return dir, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open postal code directory: %w", err)
	}
	defer f.Close()

	dir, err := Load(f)
	if err != nil {
		return nil, err
	}
	log.Infof("[PLZ] loaded %d postal codes from %s", dir.Len(), path)
	return dir, nil
}

// Lookup returns the location of a postal code.
func (d *Directory) Lookup(code string) (models.Location, bool) {
	loc, ok := d.entries[code]
	return loc, ok
}

// Embedded reports whether the built-in sample directory is in use. It
// only covers a few dozen postal codes around Leipzig.
func (d *Directory) Embedded() bool {
	return d.embedded
}

func (d *Directory) Len() int {
	return len(d.entries)
}
