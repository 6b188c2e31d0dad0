// Package pricing computes per-line surcharges for product customizations.
package pricing

import "strings"

// The menu is bilingual, so a paid option may arrive under either its French
// or Arabic label. optionAliases folds every known label onto one canonical
// option identifier; surcharges then maps that identifier to the choices
// carrying an extra charge, keyed lower-case. Today the only paid option is
// the fries add-on.
var optionAliases = map[string]string{
	"With fries": "fries",
	"بطاطس":      "fries",
}

var surcharges = map[string]map[string]float64{
	"fries": {"yes": 7, "نعم": 7},
}

// PriceExtras returns the total surcharge for a customization map. It is a
// total function: unrecognized options and choices contribute nothing, and
// each canonical option is charged at most once.
func PriceExtras(customizations map[string]string) float64 {
	var total float64
	charged := make(map[string]bool, len(surcharges))
	for option, choice := range customizations {
		canonical, ok := optionAliases[option]
		if !ok || charged[canonical] {
			continue
		}
		if amount, ok := surcharges[canonical][strings.ToLower(choice)]; ok {
			total += amount
			charged[canonical] = true
		}
	}
	return total
}
