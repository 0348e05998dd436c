package mahjong

import "sort"

// Efficiency is the shared §4.H procedure: it is implemented once here and
// reused by every Checker rather than duplicated per form, since the
// probing loop (discard a tile, re-check shanten, then probe draws) is
// identical regardless of which form is doing the checking.
func Efficiency(checker Checker, hand HandInfo) ([]EfficiencyEntry, error) {
	if hand.Concealed.NumTiles()%3 != 1 || hand.WinningTile == nil {
		return nil, ErrInvalidHandSize
	}

	baseShanten, err := checker.Shanten(hand)
	if err != nil {
		return nil, err
	}

	working := hand
	working.Concealed = hand.concealedWithWinningTile()
	working.WinningTile = nil

	var entries []EfficiencyEntry

	for discard := 0; discard < NumTileKinds; discard++ {
		if working.Concealed[discard] == 0 {
			continue
		}
		working.Concealed[discard]--

		shanten, err := checker.Shanten(working)
		if err != nil {
			working.Concealed[discard]++
			return nil, err
		}

		if shanten == baseShanten {
			ukeire, numUkeire, err := calculateUkeire(checker, working, baseShanten)
			if err != nil {
				working.Concealed[discard]++
				return nil, err
			}
			entries = append(entries, EfficiencyEntry{
				Discard:   discard,
				Ukeire:    ukeire,
				NumUkeire: numUkeire,
			})
		}

		working.Concealed[discard]++
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].NumUkeire != entries[j].NumUkeire {
			return entries[i].NumUkeire > entries[j].NumUkeire
		}
		return entries[i].Discard < entries[j].Discard
	})

	return entries, nil
}

// calculateUkeire probes every tile index as a candidate draw and keeps
// those that are not already exhausted in the wall and that reduce
// shanten by exactly one.
func calculateUkeire(checker Checker, hand HandInfo, shanten int) ([]int, int, error) {
	var ukeire []int
	numUkeire := 0

	total := hand.TotalCount()
	probe := hand

	for draw := 0; draw < NumTileKinds; draw++ {
		if total[draw] == 4 {
			continue
		}
		probe.WinningTile = &draw

		nextShanten, err := checker.Shanten(probe)
		if err != nil {
			return nil, 0, err
		}
		if nextShanten == shanten-1 {
			ukeire = append(ukeire, draw)
			numUkeire += 4 - total[draw]
		}
	}

	return ukeire, numUkeire, nil
}
