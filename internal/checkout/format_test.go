package checkout

import "testing"

func TestFormatCardNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"full visa", "4111111111111111", "4111 1111 1111 1111"},
		{"already grouped", "4242 4242 4242 4242", "4242 4242 4242 4242"},
		{"dashes stripped", "4242-4242-4242-4242", "4242 4242 4242 4242"},
		{"partial 12 digits", "411111111111", "4111 1111 1111"},
		{"overlong keeps first 16", "41111111111111119999", "4111 1111 1111 1111"},
		{"under four digits pass through", "12", "12"},
		{"letters only", "abc", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCardNumber(tc.input); got != tc.want {
				t.Fatalf("FormatCardNumber(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"four digits", "1225", "12/25"},
		{"single digit unchanged", "1", "1"},
		{"two digits get slash", "12", "12/"},
		{"already slashed", "12/25", "12/25"},
		{"overlong truncated", "122534", "12/25"},
		{"junk stripped", "1a2b2c5", "12/25"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatExpiry(tc.input); got != tc.want {
				t.Fatalf("FormatExpiry(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
