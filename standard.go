package mahjong

// infiniteShanten stands in for "no arrangement found yet" while the
// search explores branches; it is never returned to a caller.
const infiniteShanten = 100

// StandardChecker computes shanten and decompositions for the standard
// form: four sets (sequences, triplets or quads) plus one head. It
// carries scratch state — tileCount, usedCount, bestShanten and the
// in-progress parts list — that the recursive search mutates in place
// and always restores before returning. An instance is single-use per
// call: don't invoke its methods concurrently from multiple goroutines.
type StandardChecker struct {
	tileCount   TileCount
	usedCount   TileCount
	bestShanten int

	parts     []DivisionPart
	divisions []Division
}

// NewStandardChecker returns a ready-to-use standard-form checker.
func NewStandardChecker() *StandardChecker {
	return &StandardChecker{}
}

func validateStandardShape(hand HandInfo) error {
	numCalls := len(hand.Calls)
	if hand.Concealed.NumTiles()%3 != 1 {
		return ErrInvalidHandSize
	}
	if hand.Concealed.NumTiles()/3+numCalls != 4 {
		return ErrInvalidHandSize
	}
	return nil
}

// Shanten implements the §4.E.1 two-phase search: Phase 1 enumerates head
// choices (including "no head yet"), Phase 2a enumerates complete sets,
// and Phase 2b commits partial sets over whatever residual tiles
// remain, scoring each leaf and keeping the minimum.
func (c *StandardChecker) Shanten(hand HandInfo) (int, error) {
	if err := validateStandardShape(hand); err != nil {
		return 0, err
	}

	numCalls := len(hand.Calls)
	c.usedCount = hand.TotalCount()
	c.tileCount = hand.concealedWithWinningTile()
	c.bestShanten = infiniteShanten

	for head := 0; head < NumTileKinds; head++ {
		if c.tileCount[head] < 2 {
			continue
		}
		c.tileCount[head] -= 2
		c.searchCompleteSets(numCalls, true, 0)
		c.tileCount[head] += 2
	}
	c.searchCompleteSets(numCalls, false, 0)

	return c.bestShanten, nil
}

// IsComplete reports whether hand's standard-form shanten is -1.
func (c *StandardChecker) IsComplete(hand HandInfo) (bool, error) {
	return isComplete(c, hand)
}

// Efficiency delegates to the shared §4.H probing procedure.
func (c *StandardChecker) Efficiency(hand HandInfo) ([]EfficiencyEntry, error) {
	return Efficiency(c, hand)
}

// searchCompleteSets is Phase 2a: at the earliest nonzero index it tries,
// in order, a triplet, a sequence, and skipping the index outright, then
// hands off to Phase 2b once the scan exhausts the tile count. A
// lower-bound prune cuts branches that cannot beat the best shanten found
// so far.
func (c *StandardChecker) searchCompleteSets(numSets int, headFixed bool, index int) {
	index = c.tileCount.FindEarliestNonzeroIndex(index)

	if index == NumTileKinds {
		// Best possible leaf below here: 4-numSets partials, one point
		// for a fixed head and one for a pair possibility.
		headBonus := 0
		if headFixed {
			headBonus = 1
		}
		if 4-numSets-headBonus >= c.bestShanten {
			return
		}
		c.searchPartialSets(numSets, 0, headFixed, 0)
		return
	}

	if c.tileCount[index] >= 3 {
		c.tileCount[index] -= 3
		c.searchCompleteSets(numSets+1, headFixed, index)
		c.tileCount[index] += 3
	}

	if c.canMakeSequence(index, 1) {
		c.tileCount[index]--
		c.tileCount[index+1]--
		c.tileCount[index+2]--
		c.searchCompleteSets(numSets+1, headFixed, index)
		c.tileCount[index]++
		c.tileCount[index+1]++
		c.tileCount[index+2]++
	}

	c.searchCompleteSets(numSets, headFixed, index+1)
}

// searchPartialSets is Phase 2b: continuing over the residual tile count,
// it tries a pair, a closed (middle) gap, an edge-or-side gap, and
// skipping the index, stopping once enough partials are committed or the
// scan runs out of tiles.
func (c *StandardChecker) searchPartialSets(numSets, numPartials int, headFixed bool, index int) {
	index = c.tileCount.FindEarliestNonzeroIndex(index)

	if numSets+numPartials == 4 || index == NumTileKinds {
		canMakePair := headFixed || c.anySingleDrawable()
		headBonus, pairBonus := 0, 0
		if headFixed {
			headBonus = 1
		}
		if canMakePair {
			pairBonus = 1
		}
		shanten := 9 - 2*numSets - numPartials - headBonus - pairBonus
		if shanten < c.bestShanten {
			c.bestShanten = shanten
		}
		return
	}

	if c.canMakeDualPonPart(index) {
		c.tileCount[index] -= 2
		c.searchPartialSets(numSets, numPartials+1, headFixed, index)
		c.tileCount[index] += 2
	}

	if c.canMakeClosedPart(index) {
		c.tileCount[index]--
		c.tileCount[index+2]--
		c.searchPartialSets(numSets, numPartials+1, headFixed, index)
		c.tileCount[index]++
		c.tileCount[index+2]++
	}

	if c.canMakeEdgePart(index) || c.canMakeSidePart(index) {
		c.tileCount[index]--
		c.tileCount[index+1]--
		c.searchPartialSets(numSets, numPartials+1, headFixed, index)
		c.tileCount[index]++
		c.tileCount[index+1]++
	}

	c.searchPartialSets(numSets, numPartials, headFixed, index+1)
}

func (c *StandardChecker) anySingleDrawable() bool {
	for tile := 0; tile < NumTileKinds; tile++ {
		if c.tileCount[tile] == 1 && c.usedCount[tile] < 4 {
			return true
		}
	}
	return false
}

func (c *StandardChecker) canMakeSequence(index, n int) bool {
	return isSequenceStart[index] &&
		c.tileCount[index] >= n && c.tileCount[index+1] >= n && c.tileCount[index+2] >= n
}

func (c *StandardChecker) canMakeDualPonPart(index int) bool {
	return c.tileCount[index] >= 2 && c.usedCount[index] < 4
}

func (c *StandardChecker) canMakeClosedPart(index int) bool {
	return isSequenceStart[index] && c.tileCount[index+2] > 0 && c.usedCount[index+1] < 4
}

func (c *StandardChecker) canMakeSidePart(index int) bool {
	return isSideWaitStart[index] && c.tileCount[index+1] > 0 &&
		(c.usedCount[index+2] < 4 || c.usedCount[index-1] < 4)
}

func (c *StandardChecker) canMakeEdgePart(index int) bool {
	switch {
	case isLeftEdgeWaitStart[index]:
		return c.tileCount[index+1] > 0 && c.usedCount[index+2] < 4
	case isRightEdgeWaitStart[index]:
		return c.tileCount[index+1] > 0 && c.usedCount[index-1] < 4
	default:
		return false
	}
}

// Decompose implements §4.E.2: it only runs once the hand is complete and
// carries a winning tile, enumerating head choices and then a
// deterministic suit-wise body split for each.
func (c *StandardChecker) Decompose(hand HandInfo) ([]Division, error) {
	complete, err := c.IsComplete(hand)
	if err != nil {
		return nil, err
	}
	if !complete || hand.WinningTile == nil {
		return nil, ErrNotComplete
	}

	winningIndex := *hand.WinningTile
	c.tileCount = hand.concealedWithWinningTile()

	callParts := make([]DivisionPart, len(hand.Calls))
	for i, call := range hand.Calls {
		callParts[i] = NewPartFromCall(call)
	}

	c.divisions = nil
	c.parts = nil
	for head := 0; head < NumTileKinds; head++ {
		if c.tileCount[head] < 2 {
			continue
		}
		c.tileCount[head] -= 2
		c.parts = append(c.parts, NewHeadPart(head, PartConcealed))
		if err := c.findBodies(0); err != nil {
			return nil, err
		}
		c.parts = c.parts[:len(c.parts)-1]
		c.tileCount[head] += 2
	}

	divisions, err := classifyDivisions(c.divisions, callParts, winningIndex, hand.SelfDrawn)
	if err != nil {
		return nil, err
	}
	return divisions, nil
}

// findBodies is the suit-wise deterministic body split: at the earliest
// nonzero index it tries 0 or 1 triplets, absorbing whatever residual
// count remains into a run of sequences starting at the same index, then
// recurses on the next index. Every leaf (index==34) appends the
// accumulated parts as one completed concealed decomposition.
func (c *StandardChecker) findBodies(index int) error {
	index = c.tileCount.FindEarliestNonzeroIndex(index)
	if index == NumTileKinds {
		snapshot := append([]DivisionPart{}, c.parts...)
		c.divisions = append(c.divisions, Division{Parts: snapshot})
		return nil
	}

	for numTriplet := 0; numTriplet <= 1; numTriplet++ {
		if c.tileCount[index] < 3*numTriplet {
			continue
		}
		numSequence := c.tileCount[index] - 3*numTriplet
		// A nonzero residual can only spread into a run of sequences
		// when index starts one; a zero residual (pure triplet, the
		// only option for honors and the 8/9 positions) never touches
		// index+1/index+2, so it's always valid.
		if numSequence > 0 && (!isSequenceStart[index] || numSequence > c.tileCount[index+1] || numSequence > c.tileCount[index+2]) {
			continue
		}

		added := 0
		if numTriplet == 1 {
			c.parts = append(c.parts, NewTriplePart(index, PartConcealed))
			added++
		}
		for i := 0; i < numSequence; i++ {
			seqPart, err := NewSequencePart(index, PartConcealed)
			if err != nil {
				return err
			}
			c.parts = append(c.parts, seqPart)
			added++
		}

		c.tileCount[index] = 0
		if numSequence > 0 {
			c.tileCount[index+1] -= numSequence
			c.tileCount[index+2] -= numSequence
		}

		if err := c.findBodies(index + 1); err != nil {
			return err
		}

		c.tileCount[index] = 3*numTriplet + numSequence
		if numSequence > 0 {
			c.tileCount[index+1] += numSequence
			c.tileCount[index+2] += numSequence
		}
		c.parts = c.parts[:len(c.parts)-added]
	}

	return nil
}

// classifyDivisions expands each concealed leaf decomposition into zero
// or more Divisions: one per concealed part that contains the winning
// tile, with that part relabelled RON (or CONCEALED if self-drawn) and
// every other concealed part left CONCEALED.
func classifyDivisions(leaves []Division, callParts []DivisionPart, winningIndex int, selfDrawn bool) ([]Division, error) {
	var out []Division
	for _, leaf := range leaves {
		for idx, part := range leaf.Parts {
			if part.Tiles[winningIndex] == 0 {
				continue
			}

			relabelled := append([]DivisionPart{}, leaf.Parts...)
			winningState := PartRon
			if selfDrawn {
				winningState = PartConcealed
			}
			relabelled[idx].State = winningState

			waitType, err := classifyWaitType(relabelled[idx], winningIndex)
			if err != nil {
				return nil, err
			}

			allParts := append(append([]DivisionPart{}, relabelled...), callParts...)
			out = append(out, Division{Parts: allParts, WaitType: waitType})
		}
	}
	return out, nil
}

// classifyWaitType labels the wait shape of part relative to winningIndex,
// per the table in §4.E.2.
func classifyWaitType(part DivisionPart, winningIndex int) (WaitType, error) {
	switch part.Kind {
	case PartHead:
		return SingleWait, nil
	case PartTriple:
		return DualPonWait, nil
	}

	if winningIndex-1 >= 0 && part.Tiles[winningIndex-1] > 0 &&
		winningIndex+1 < NumTileKinds && part.Tiles[winningIndex+1] > 0 {
		return ClosedWait, nil
	}

	if winningIndex-2 >= 0 && part.Tiles[winningIndex-2] > 0 && part.Tiles[winningIndex-1] > 0 {
		if isLeftEdgeWaitStart[winningIndex-2] {
			return EdgeWait, nil
		}
		return SideWait, nil
	}

	if winningIndex+1 < NumTileKinds && part.Tiles[winningIndex+1] > 0 &&
		winningIndex+2 < NumTileKinds && part.Tiles[winningIndex+2] > 0 {
		if isRightEdgeWaitStart[winningIndex+1] {
			return EdgeWait, nil
		}
		return SideWait, nil
	}

	return 0, ErrAmbiguousWait
}
