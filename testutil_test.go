package mahjong

import "testing"

// mustParseHand parses a concealed+calls hand string for test setup,
// failing the test immediately on a malformed literal.
func mustParseHand(t *testing.T, s string) HandInfo {
	t.Helper()
	hand, err := ParseHand(s)
	if err != nil {
		t.Fatalf("ParseHand(%q): %v", s, err)
	}
	return hand
}

// mustParseTile parses a single tile token for test setup.
func mustParseTile(t *testing.T, s string) int {
	t.Helper()
	index, err := ParseTile(s)
	if err != nil {
		t.Fatalf("ParseTile(%q): %v", s, err)
	}
	return index
}
