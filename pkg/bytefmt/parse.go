package bytefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Parsed is the record shape of a parsing result. Value is the unit-relative
// magnitude as written (2.5 for "2.5MB"), Bytes the floored byte count.
type Parsed struct {
	Value float64
	Unit  string
	Bytes int64
}

// InvalidByteValueError reports input that is neither a finite number nor a
// parseable size string. Input holds the original value.
type InvalidByteValueError struct {
	Input any
}

func (e *InvalidByteValueError) Error() string {
	if s, ok := e.Input.(string); ok {
		return fmt.Sprintf("Invalid byte value: %q", s)
	}
	return fmt.Sprintf("Invalid byte value: %v", e.Input)
}

// sizePattern is the strict grammar: optional sign, digits, optional decimal
// fraction, optional whitespace, then a unit token.
var sizePattern = regexp.MustCompile(`(?i)^([-+]?\d+(?:\.\d+)?)\s*([kmgtpezy]?b)$`)

// TryParse converts a size string or a number to a byte count. Strings match
// the strict grammar ("1.5KB", "-3 mb") or fall back to a bare decimal with
// an implied B unit; numbers pass through as byte counts. The result is the
// floor of magnitude times unit scale, so "1.5B" is 1 and "-1.5B" is -2. The
// second return is false for non-finite numbers, unparseable strings, and
// inputs that are neither string nor number.
//
// Byte counts beyond the int64 range (magnitudes past roughly 8EB) overflow.
func TryParse(input any) (int64, bool) {
	detail, ok := parseDetail(input)
	return detail.Bytes, ok
}

// TryParseParts is TryParse returning the canonical unit label as well.
func TryParseParts(input any) (int64, string, bool) {
	detail, ok := parseDetail(input)
	return detail.Bytes, detail.Unit, ok
}

// TryParseDetail is TryParse returning the full Parsed record.
func TryParseDetail(input any) (Parsed, bool) {
	return parseDetail(input)
}

// Parse is TryParse reporting invalid input as an *InvalidByteValueError.
func Parse(input any) (int64, error) {
	detail, err := ParseDetail(input)
	return detail.Bytes, err
}

// ParseParts is TryParseParts reporting invalid input as an error.
func ParseParts(input any) (int64, string, error) {
	detail, err := ParseDetail(input)
	return detail.Bytes, detail.Unit, err
}

// ParseDetail is TryParseDetail reporting invalid input as an error.
func ParseDetail(input any) (Parsed, error) {
	detail, ok := parseDetail(input)
	if !ok {
		return Parsed{}, &InvalidByteValueError{Input: input}
	}
	return detail, nil
}

// MustParse is Parse panicking on invalid input.
func MustParse(input any) int64 {
	bytes, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return bytes
}

// MustParseParts is ParseParts panicking on invalid input.
func MustParseParts(input any) (int64, string) {
	bytes, label, err := ParseParts(input)
	if err != nil {
		panic(err)
	}
	return bytes, label
}

// MustParseDetail is ParseDetail panicking on invalid input.
func MustParseDetail(input any) Parsed {
	detail, err := ParseDetail(input)
	if err != nil {
		panic(err)
	}
	return detail
}

// parseDetail is the single parsing computation; every exported call style
// and shape wraps it.
func parseDetail(input any) (Parsed, bool) {
	switch v := input.(type) {
	case string:
		return parseString(v)
	case float64:
		return parseNumber(v)
	case float32:
		return parseNumber(float64(v))
	case int:
		return parseNumber(float64(v))
	case int8:
		return parseNumber(float64(v))
	case int16:
		return parseNumber(float64(v))
	case int32:
		return parseNumber(float64(v))
	case int64:
		return parseNumber(float64(v))
	case uint:
		return parseNumber(float64(v))
	case uint8:
		return parseNumber(float64(v))
	case uint16:
		return parseNumber(float64(v))
	case uint32:
		return parseNumber(float64(v))
	case uint64:
		return parseNumber(float64(v))
	default:
		return Parsed{}, false
	}
}

func parseNumber(v float64) (Parsed, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Parsed{}, false
	}
	return Parsed{Value: v, Unit: units[0].Label, Bytes: int64(math.Floor(v))}, true
}

func parseString(s string) (Parsed, bool) {
	s = strings.TrimSpace(s)
	if m := sizePattern.FindStringSubmatch(s); m != nil {
		magnitude, err := strconv.ParseFloat(m[1], 64)
		if err != nil || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
			return Parsed{}, false
		}
		label, _ := normalizeUnit(m[2])
		scale, _ := unitScale(m[2])
		return Parsed{
			Value: magnitude,
			Unit:  label,
			Bytes: int64(math.Floor(magnitude * float64(scale))),
		}, true
	}
	magnitude, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Parsed{}, false
	}
	return Parsed{Value: magnitude, Unit: units[0].Label, Bytes: int64(math.Floor(magnitude))}, true
}
