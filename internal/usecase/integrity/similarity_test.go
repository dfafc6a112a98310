package integrity

import "testing"

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "xyz", 0.0},
		{"abcd", "bcde", 0.75},
	}
	for _, tc := range cases {
		if got := similarity(tc.a, tc.b); got != tc.want {
			t.Fatalf("similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a, b := "john smith", "jon smith"
	if similarity(a, b) != similarity(b, a) {
		t.Fatalf("similarity must be symmetric")
	}
}

func TestSimilarity_NearDuplicateNames(t *testing.T) {
	// "john smith" vs "jon smith": 9 matching runes out of 19 total
	got := similarity("john smith", "jon smith")
	if got <= 0.9 || got >= 1.0 {
		t.Fatalf("expected a high ratio below 1.0, got %v", got)
	}
}
