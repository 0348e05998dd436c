package mahjong

import "testing"

func TestStandardEfficiency(t *testing.T) {
	checker := NewStandardChecker()
	hand := mustParseHand(t, "69m5678p2789s344z").WithWinningTile(mustParseTile(t, "7p"))

	entries, err := checker.Efficiency(hand)
	if err != nil {
		t.Fatalf("Efficiency: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one discard candidate")
	}

	top := entries[0]
	if top.Discard != mustParseTile(t, "9m") {
		t.Fatalf("top discard = %d, want index of 9m", top.Discard)
	}
	if top.NumUkeire != 46 {
		t.Errorf("NumUkeire = %d, want 46", top.NumUkeire)
	}

	wantUkeire := []string{"4m", "5m", "6m", "7m", "8m", "6p", "9p", "1s", "2s", "3s", "4s", "3z", "4z"}
	if len(top.Ukeire) != len(wantUkeire) {
		t.Fatalf("len(Ukeire) = %d, want %d", len(top.Ukeire), len(wantUkeire))
	}
	for _, tile := range wantUkeire {
		index := mustParseTile(t, tile)
		found := false
		for _, u := range top.Ukeire {
			if u == index {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ukeire missing expected tile %s", tile)
		}
	}
}

func TestEfficiencyOrderingInvariant(t *testing.T) {
	checker := NewStandardChecker()
	hand := mustParseHand(t, "69m5678p2789s344z").WithWinningTile(mustParseTile(t, "7p"))

	entries, err := checker.Efficiency(hand)
	if err != nil {
		t.Fatalf("Efficiency: %v", err)
	}

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.NumUkeire < cur.NumUkeire {
			t.Fatalf("entries not sorted by descending ukeire count at %d", i)
		}
		if prev.NumUkeire == cur.NumUkeire && prev.Discard > cur.Discard {
			t.Fatalf("entries with equal ukeire not sorted by discard index at %d", i)
		}
	}
}
