package bytefmt

import (
	"math"
	"strconv"
	"strings"
)

// Formatted is the record shape of a formatting result. Bytes preserves the
// original input value, fractional or negative included.
type Formatted struct {
	Value string
	Unit  string
	Bytes float64
}

type formatOptions struct {
	decimalPlaces      int
	fixedDecimals      bool
	unit               string
	unitSeparator      string
	thousandsSeparator string
}

// FormatOption configures formatting.
type FormatOption func(*formatOptions)

// DecimalPlaces sets the number of fractional digits rendered before
// trimming. Negative values are treated as zero. The default is 2.
func DecimalPlaces(places int) FormatOption {
	return func(o *formatOptions) {
		if places < 0 {
			places = 0
		}
		o.decimalPlaces = places
	}
}

// FixedDecimals keeps trailing zero fractional digits instead of trimming
// them, so 2 renders as "2.00" at the default two places.
func FixedDecimals(fixed bool) FormatOption {
	return func(o *formatOptions) {
		o.fixedDecimals = fixed
	}
}

// WithUnit forces the divisor unit, case-insensitive. An unrecognized label
// silently falls back to automatic unit selection.
func WithUnit(label string) FormatOption {
	return func(o *formatOptions) {
		o.unit = label
	}
}

// UnitSeparator sets the string inserted between the number and the unit
// label in scalar output. The default is no separator.
func UnitSeparator(sep string) FormatOption {
	return func(o *formatOptions) {
		o.unitSeparator = sep
	}
}

// ThousandsSeparator sets the string inserted every three digits of the
// integer part, counting from the right. The fractional part and any leading
// sign are never touched. The default is no grouping.
func ThousandsSeparator(sep string) FormatOption {
	return func(o *formatOptions) {
		o.thousandsSeparator = sep
	}
}

func resolveFormatOptions(opts []FormatOption) formatOptions {
	resolved := formatOptions{decimalPlaces: 2}
	for _, opt := range opts {
		opt(&resolved)
	}
	return resolved
}

// Format renders a byte count as a scalar string, e.g. Format(1536) is
// "1.5KB". The second return is false when value is NaN or infinite;
// formatting has no other failure mode.
func Format(value float64, opts ...FormatOption) (string, bool) {
	o := resolveFormatOptions(opts)
	detail, ok := formatDetail(value, o)
	if !ok {
		return "", false
	}
	return detail.Value + o.unitSeparator + detail.Unit, true
}

// FormatParts renders a byte count as its number and unit label.
func FormatParts(value float64, opts ...FormatOption) (string, string, bool) {
	detail, ok := formatDetail(value, resolveFormatOptions(opts))
	if !ok {
		return "", "", false
	}
	return detail.Value, detail.Unit, true
}

// FormatDetail renders a byte count as a Formatted record.
func FormatDetail(value float64, opts ...FormatOption) (Formatted, bool) {
	return formatDetail(value, resolveFormatOptions(opts))
}

// formatDetail is the single formatting computation; the exported shape
// variants are projections of its result.
func formatDetail(value float64, o formatOptions) (Formatted, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Formatted{}, false
	}
	idx := -1
	if o.unit != "" {
		if i, ok := unitIndexes[strings.ToLower(o.unit)]; ok {
			idx = i
		}
	}
	if idx < 0 {
		idx = selectUnit(math.Abs(value))
	}
	rendered := renderDecimal(value/float64(units[idx].Scale), o.decimalPlaces, o.fixedDecimals)
	if o.thousandsSeparator != "" {
		rendered = groupThousands(rendered, o.thousandsSeparator)
	}
	return Formatted{Value: rendered, Unit: units[idx].Label, Bytes: value}, true
}

// renderDecimal rounds half away from zero to the given number of places and
// renders fixed-point. Unless fixed, trailing zero fractional digits (and a
// bare trailing point) are trimmed.
func renderDecimal(v float64, places int, fixed bool) string {
	shift := math.Pow(10, float64(places))
	v = math.Round(v*shift) / shift
	s := strconv.FormatFloat(v, 'f', places, 64)
	if !fixed && strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func groupThousands(s, sep string) string {
	var sign string
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}
	var grouped strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		grouped.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			grouped.WriteString(sep)
		}
		grouped.WriteString(intPart[i : i+3])
	}
	return sign + grouped.String() + frac
}
