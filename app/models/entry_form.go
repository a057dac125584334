package models

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultCountry = "Deutschland"
	DefaultCount   = 1
	MinCount       = 1
	MaxCount       = 999
	PLZLength      = 5
)

var (
	ErrCountNotNumber  = errors.New("Anzahl muss eine Zahl sein")
	ErrCountOutOfRange = errors.New("Anzahl muss zwischen 1 und 999 liegen")
	ErrUnknownCountry  = errors.New("Unbekanntes Land ausgewählt")
	ErrPLZLength       = errors.New("PLZ muss 5-stellig sein")
	ErrPLZDigits       = errors.New("PLZ darf nur Ziffern enthalten")
)

var validate = validator.New()

// EntryForm is the submitted visitor form.
type EntryForm struct {
	PLZ     string `form:"plz"`
	Country string `form:"country"`
	Count   string `form:"count"`
}

// IsDomestic reports whether the entry is keyed by a German postal code.
func (f *EntryForm) IsDomestic() bool {
	return f.Country == "" || f.Country == DefaultCountry
}

// Title is what the entry is recorded under: the postal code or the country name.
func (f *EntryForm) Title() string {
	if f.IsDomestic() {
		return f.PLZ
	}
	return f.Country
}

// Validate checks the form in the order the user sees the fields
// and returns the parsed visitor count.
func (f *EntryForm) Validate(countries []string) (int, error) {
	f.PLZ = strings.TrimSpace(f.PLZ)
	f.Country = strings.TrimSpace(f.Country)
	f.Count = strings.TrimSpace(f.Count)

	count, err := strconv.Atoi(f.Count)
	if err != nil {
		return 0, ErrCountNotNumber
	}
	if err := validate.Var(count, "min=1,max=999"); err != nil {
		return 0, ErrCountOutOfRange
	}

	if f.Country == "" {
		f.Country = DefaultCountry
	}
	if !slices.Contains(countries, f.Country) {
		return 0, ErrUnknownCountry
	}
	if !f.IsDomestic() {
		return count, nil
	}

	if err := validate.Var(f.PLZ, "len=5"); err != nil {
		return 0, ErrPLZLength
	}
	if err := validate.Var(f.PLZ, "number"); err != nil {
		return 0, ErrPLZDigits
	}
	return count, nil
}

// ExportForm carries the inputs of the download panel.
type ExportForm struct {
	Date  string `form:"date" validate:"omitempty,datetime=2006-01-02"`
	Month int    `form:"month" validate:"omitempty,min=1,max=12"`
	Year  int    `form:"year" validate:"omitempty,min=2023"`
}

func (f *ExportForm) Validate() error {
	return validate.Struct(f)
}
