package bytefmt

import (
	"testing"
)

func Test_unitTable(t *testing.T) {
	if len(units) != 9 {
		t.Fatalf("Expected 9 units, got %d", len(units))
	}
	seen := make(map[string]bool)
	expected := 1.0
	for i, u := range units {
		if seen[u.Label] {
			t.Errorf("Duplicate label %s", u.Label)
		}
		seen[u.Label] = true
		if float64(u.Scale) != expected {
			t.Errorf("Index=%d Label=%s Expected scale=%v vs. Actual=%v", i, u.Label, expected, float64(u.Scale))
		}
		expected *= 1024
	}
}

func Test_unitScale(t *testing.T) {
	testCases := [...]struct {
		Input    string
		Expected Unit
		OK       bool
	}{
		{"b", Byte, true},
		{"B", Byte, true},
		{"kb", Kilobyte, true},
		{"KB", Kilobyte, true},
		{"Kb", Kilobyte, true},
		{"mb", Megabyte, true},
		{"gb", Gigabyte, true},
		{"tb", Terabyte, true},
		{"pb", Petabyte, true},
		{"eb", Exabyte, true},
		{"zb", Zettabyte, true},
		{"yb", Yottabyte, true},
		{"bogus", 0, false},
		{"", 0, false},
		{"kib", 0, false},
	}

	for _, tc := range testCases {
		actual, ok := unitScale(tc.Input)
		if ok != tc.OK || actual != tc.Expected {
			t.Errorf("Input=%q Expected=(%v,%v) vs. Actual=(%v,%v)", tc.Input, float64(tc.Expected), tc.OK, float64(actual), ok)
		}
	}
}

func Test_normalizeUnit(t *testing.T) {
	testCases := [...]struct {
		Input    string
		Expected string
		OK       bool
	}{
		{"b", "B", true},
		{"kB", "KB", true},
		{"MB", "MB", true},
		{"yb", "YB", true},
		{"nope", "", false},
	}

	for _, tc := range testCases {
		actual, ok := normalizeUnit(tc.Input)
		if ok != tc.OK || actual != tc.Expected {
			t.Errorf("Input=%q Expected=(%q,%v) vs. Actual=(%q,%v)", tc.Input, tc.Expected, tc.OK, actual, ok)
		}
	}
}

func Test_selectUnit(t *testing.T) {
	testCases := [...]struct {
		Input    float64
		Expected int
	}{
		{0, 0},
		{0.5, 0},
		{1, 0},
		{1023, 0},
		{1024, 1},
		{1048575, 1},
		{1048576, 2},
		{float64(Yottabyte), 8},
		{float64(Yottabyte) * 2048, 8},
	}

	for _, tc := range testCases {
		if actual := selectUnit(tc.Input); actual != tc.Expected {
			t.Errorf("Input=%v Expected=%d vs. Actual=%d", tc.Input, tc.Expected, actual)
		}
	}
}
