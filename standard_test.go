package mahjong

import (
	"reflect"
	"testing"
)

func TestStandardShanten(t *testing.T) {
	tests := []struct {
		name    string
		hand    string
		winning string
		want    int
	}{
		{"complete four sets and a head", "123m456p789s1112z", "2z", -1},
		{"ready, single wait on 2z", "123m456p789s1112z", "", 0},
		{"one away", "123m456p789s1111z", "", 1},
		{"scattered, three away", "135m466p479s1122z", "", 3},
	}

	checker := NewStandardChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := mustParseHand(t, tt.hand)
			if tt.winning != "" {
				hand = hand.WithWinningTile(mustParseTile(t, tt.winning))
			}

			got, err := checker.Shanten(hand)
			if err != nil {
				t.Fatalf("Shanten: %v", err)
			}
			if got != tt.want {
				t.Errorf("Shanten(%s) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}

func TestStandardIsComplete(t *testing.T) {
	checker := NewStandardChecker()

	complete := mustParseHand(t, "123m456p789s1112z").WithWinningTile(mustParseTile(t, "2z"))
	ok, err := checker.IsComplete(complete)
	if err != nil || !ok {
		t.Fatalf("IsComplete(complete) = %v, %v, want true, nil", ok, err)
	}

	ready := mustParseHand(t, "123m456p789s1112z")
	ok, err = checker.IsComplete(ready)
	if err != nil || ok {
		t.Fatalf("IsComplete(ready) = %v, %v, want false, nil", ok, err)
	}
}

func TestStandardShantenInvalidHandSize(t *testing.T) {
	checker := NewStandardChecker()
	hand := mustParseHand(t, "123m456p") // 6 tiles, not 3n+1

	_, err := checker.Shanten(hand)
	if err != ErrInvalidHandSize {
		t.Fatalf("Shanten on malformed hand = %v, want ErrInvalidHandSize", err)
	}
}

func TestStandardDecomposeEdgeWait(t *testing.T) {
	checker := NewStandardChecker()
	hand := mustParseHand(t, "12345689m123p99s").WithWinningTile(mustParseTile(t, "7m"))

	divisions, err := checker.Decompose(hand)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if len(divisions) != 1 {
		t.Fatalf("len(divisions) = %d, want 1", len(divisions))
	}

	d := divisions[0]
	if len(d.Parts) != 5 {
		t.Errorf("len(parts) = %d, want 5", len(d.Parts))
	}
	if d.WaitType != EdgeWait {
		t.Errorf("WaitType = %v, want EdgeWait", d.WaitType)
	}
	if !reflect.DeepEqual(d.TileCount(), hand.TotalCount()) {
		t.Errorf("division tile count does not match hand total count")
	}
}

func TestStandardDecomposeRequiresCompleteHand(t *testing.T) {
	checker := NewStandardChecker()
	hand := mustParseHand(t, "123m456p789s1112z")

	_, err := checker.Decompose(hand)
	if err != ErrNotComplete {
		t.Fatalf("Decompose on a ready (non-complete) hand = %v, want ErrNotComplete", err)
	}
}

func TestStandardHonorTripletDecomposes(t *testing.T) {
	// Regression: a pure honor triplet (no adjacent sequence tiles to
	// borrow from) must still be reachable by the body search.
	checker := NewStandardChecker()
	hand := mustParseHand(t, "123m456p789s99p11z").WithWinningTile(mustParseTile(t, "1z"))

	divisions, err := checker.Decompose(hand)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if len(divisions) == 0 {
		t.Fatal("expected at least one division for an honor-triplet hand")
	}
}
