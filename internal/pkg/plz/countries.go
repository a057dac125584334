package plz

import "github.com/plzerfassung/plzerfassung/app/models"

// The first entry is the domestic default.
var countryList = []string{
	models.DefaultCountry,
	"Belgien",
	"Bulgarien",
	"China",
	"Dänemark",
	"Estland",
	"Finnland",
	"Frankreich",
	"Griechenland",
	"Großbritannien",
	"Indien",
	"Irland",
	"Island",
	"Italien",
	"Japan",
	"Kanada",
	"Kroatien",
	"Lettland",
	"Litauen",
	"Luxemburg",
	"Niederlande",
	"Norwegen",
	"Österreich",
	"Polen",
	"Portugal",
	"Rumänien",
	"Russland",
	"Schweden",
	"Schweiz",
	"Slowakei",
	"Slowenien",
	"Spanien",
	"Tschechien",
	"Türkei",
	"Ukraine",
	"Ungarn",
	"Vereinigte Staaten",
	"Sonstiges",
}

// Countries returns a copy of the selectable countries.
func Countries() []string {
	out := make([]string, len(countryList))
	copy(out, countryList)
	return out
}
