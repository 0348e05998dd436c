package mahjong

import "testing"

func TestSevenPairShanten(t *testing.T) {
	tests := []struct {
		name    string
		hand    string
		winning string
		want    int
	}{
		{"complete, seven distinct pairs", "1122334455667m", "7m", -1},
		{"ready, six pairs plus two singles", "1112233445566m", "7m", 0},
	}

	checker := NewSevenPairChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := mustParseHand(t, tt.hand).WithWinningTile(mustParseTile(t, tt.winning))
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

func TestSevenPairDecompose(t *testing.T) {
	checker := NewSevenPairChecker()
	hand := mustParseHand(t, "1122334455667m").WithWinningTile(mustParseTile(t, "7m"))

	divisions, err := checker.Decompose(hand)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if len(divisions) != 1 {
		t.Fatalf("len(divisions) = %d, want 1", len(divisions))
	}

	d := divisions[0]
	if len(d.Parts) != 7 {
		t.Errorf("len(parts) = %d, want 7", len(d.Parts))
	}
	for _, p := range d.Parts {
		if p.Kind != PartHead {
			t.Errorf("part kind = %v, want PartHead", p.Kind)
		}
	}
	if d.WaitType != SingleWait {
		t.Errorf("WaitType = %v, want SingleWait", d.WaitType)
	}
}

func TestSevenPairRejectsCalls(t *testing.T) {
	checker := NewSevenPairChecker()
	call, err := NewCall(CallPon, mustParseTile(t, "1s"), mustParseTile(t, "1s"), mustParseTile(t, "1s"))
	if err != nil {
		t.Fatalf("NewCall: %v", err)
	}
	hand := mustParseHand(t, "11223344556m")
	hand.Calls = []Call{call}

	_, err = checker.Shanten(hand)
	if err != ErrInvalidCallShape {
		t.Fatalf("Shanten with calls = %v, want ErrInvalidCallShape", err)
	}
}
