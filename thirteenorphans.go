package mahjong

// ThirteenOrphansChecker computes shanten and decompositions for the
// thirteen-orphans form: one of each of the 13 terminal/honor kinds plus a
// duplicate of any one of them, no calls allowed. Like SevenPairChecker
// this form has a closed-form shanten, so no search is needed.
type ThirteenOrphansChecker struct{}

// NewThirteenOrphansChecker returns a ready-to-use thirteen-orphans checker.
func NewThirteenOrphansChecker() *ThirteenOrphansChecker {
	return &ThirteenOrphansChecker{}
}

func validateThirteenOrphansShape(hand HandInfo) error {
	if len(hand.Calls) != 0 {
		return ErrInvalidCallShape
	}
	if hand.Concealed.NumTiles() != 13 {
		return ErrInvalidHandSize
	}
	return nil
}

// Shanten implements §4.G.1: 13 − (distinct orphan kinds held) − (1 if any
// orphan kind is held in duplicate, else 0).
func (c *ThirteenOrphansChecker) Shanten(hand HandInfo) (int, error) {
	if err := validateThirteenOrphansShape(hand); err != nil {
		return 0, err
	}

	tc := hand.concealedWithWinningTile()

	numKinds := 0
	hasPair := false
	for _, index := range terminalsAndHonors {
		if tc[index] == 0 {
			continue
		}
		numKinds++
		if tc[index] >= 2 {
			hasPair = true
		}
	}

	pairBonus := 0
	if hasPair {
		pairBonus = 1
	}

	return 13 - numKinds - pairBonus, nil
}

// IsComplete reports whether hand's thirteen-orphans shanten is -1.
func (c *ThirteenOrphansChecker) IsComplete(hand HandInfo) (bool, error) {
	return isComplete(c, hand)
}

// Decompose implements §4.G.2: a complete thirteen-orphans hand has exactly
// one decomposition, a single THIRTEEN_ORPHANS part spanning the whole
// hand. The wait is classified 13-wait when all 13 kinds were held singly
// before the winning tile completed the pair, else 1-wait.
func (c *ThirteenOrphansChecker) Decompose(hand HandInfo) ([]Division, error) {
	complete, err := c.IsComplete(hand)
	if err != nil {
		return nil, err
	}
	if !complete || hand.WinningTile == nil {
		return nil, ErrNotComplete
	}

	winningIndex := *hand.WinningTile
	preWin := hand.Concealed

	waitType := ThirteenOrphans1Wait
	headIndex := winningIndex
	if preWin[winningIndex] == 1 {
		// Before the winning tile landed, every one of the 13 kinds was
		// already held singly: any of them completing the pair would have
		// won, so this was a 13-sided wait.
		singles := 0
		for _, index := range terminalsAndHonors {
			if preWin[index] == 1 {
				singles++
			}
		}
		if singles == 13 {
			waitType = ThirteenOrphans13Wait
		}
	} else {
		// The pair was already complete before the winning tile landed;
		// the duplicated kind is whichever one already held two, not the
		// winning tile itself.
		for _, index := range terminalsAndHonors {
			if preWin[index] == 2 {
				headIndex = index
				break
			}
		}
	}

	state := PartConcealed
	if !hand.SelfDrawn {
		state = PartRon
	}
	part := NewThirteenOrphansPart(headIndex, state)

	return []Division{{Parts: []DivisionPart{part}, WaitType: waitType}}, nil
}

// Efficiency delegates to the shared §4.H probing procedure.
func (c *ThirteenOrphansChecker) Efficiency(hand HandInfo) ([]EfficiencyEntry, error) {
	return Efficiency(c, hand)
}
