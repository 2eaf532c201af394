package analysis

import "testing"

func TestNormalizeJurisdiction(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "lowercase", raw: "milano", expected: "Milano"},
		{name: "padded", raw: "  roma ", expected: "Roma"},
		{name: "multi_word", raw: "reggio emilia", expected: "Reggio Emilia"},
		{name: "already_titled", raw: "Torino", expected: "Torino"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeJurisdiction(tc.raw); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
