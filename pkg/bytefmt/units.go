// Package bytefmt converts between raw byte counts and human-readable
// binary-unit strings, e.g. 1536 <-> "1.5KB". Units are 1024-based, B
// through YB.
package bytefmt

import "strings"

// Unit is a binary byte-size multiplier. It is float-backed because the
// larger units (ZB, YB) exceed the range of uint64.
type Unit float64

const (
	Byte Unit = 1 << (10 * iota)
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
	Exabyte
	Zettabyte
	Yottabyte
)

// units is the canonical table, ordered by increasing scale. Formatter and
// parser both resolve units against this single table.
var units = [...]struct {
	Label string
	Scale Unit
}{
	{"B", Byte},
	{"KB", Kilobyte},
	{"MB", Megabyte},
	{"GB", Gigabyte},
	{"TB", Terabyte},
	{"PB", Petabyte},
	{"EB", Exabyte},
	{"ZB", Zettabyte},
	{"YB", Yottabyte},
}

var unitIndexes = map[string]int{
	"b":  0,
	"kb": 1,
	"mb": 2,
	"gb": 3,
	"tb": 4,
	"pb": 5,
	"eb": 6,
	"zb": 7,
	"yb": 8,
}

func unitScale(label string) (Unit, bool) {
	i, ok := unitIndexes[strings.ToLower(label)]
	if !ok {
		return 0, false
	}
	return units[i].Scale, true
}

func normalizeUnit(label string) (string, bool) {
	i, ok := unitIndexes[strings.ToLower(label)]
	if !ok {
		return "", false
	}
	return units[i].Label, true
}

// selectUnit returns the index of the largest unit whose scale does not
// exceed magnitude. Magnitudes below 1 resolve to B; magnitudes at or above
// a unit's exact scale resolve to that unit, so 1024 selects KB.
func selectUnit(magnitude float64) int {
	for i := len(units) - 1; i > 0; i-- {
		if magnitude >= float64(units[i].Scale) {
			return i
		}
	}
	return 0
}
