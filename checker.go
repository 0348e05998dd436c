package mahjong

// EfficiencyEntry reports, for one discard candidate that preserves
// shanten, which tile indices would reduce shanten if drawn next (ukeire)
// and how many unseen copies of those tiles remain.
type EfficiencyEntry struct {
	Discard   int
	Ukeire    []int
	NumUkeire int
}

// Checker is the shared public contract of the three hand forms: standard,
// seven pairs, and thirteen orphans. A Checker carries mutable scratch
// state for its recursion and is therefore single-use per call chain —
// concurrent calls on one instance are not safe; callers needing
// concurrency should hold one checker per logical task.
type Checker interface {
	// Shanten returns the minimum number of tile substitutions needed to
	// reach a ready hand: -1 means complete, 0 means ready, 1+ means that
	// many tiles away.
	Shanten(hand HandInfo) (int, error)

	// IsComplete reports whether Shanten(hand) == -1.
	IsComplete(hand HandInfo) (bool, error)

	// Decompose enumerates every distinct way hand can be partitioned
	// into the form's structural groups, each annotated with the wait
	// shape the winning tile completed. It requires hand to be complete
	// and to carry a winning tile.
	Decompose(hand HandInfo) ([]Division, error)

	// Efficiency probes every discard candidate that preserves shanten
	// and reports the tiles that would reduce it further. It requires
	// hand's tile count (after absorbing the winning tile) to be 3n+2.
	Efficiency(hand HandInfo) ([]EfficiencyEntry, error)
}

// isComplete is shared by every Checker implementation: completeness is
// defined purely in terms of shanten, never a separate code path.
func isComplete(c Checker, hand HandInfo) (bool, error) {
	shanten, err := c.Shanten(hand)
	if err != nil {
		return false, err
	}
	return shanten == -1, nil
}
