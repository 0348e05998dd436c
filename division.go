package mahjong

// PartKind tags the structural role a DivisionPart plays in a decomposed
// hand.
type PartKind int

const (
	PartHead PartKind = iota
	PartSequence
	PartTriple
	PartQuad
	PartThirteenOrphans
)

// PartState tags how a DivisionPart was formed.
type PartState int

const (
	// PartConcealed means the part was completed entirely from the
	// player's own concealed tiles (including a self-drawn winning
	// tile, or a concealed kan).
	PartConcealed PartState = iota
	// PartRon means the winning tile completing this part came from
	// another seat's discard.
	PartRon
	// PartOpened means the part came from a revealed (non-concealed)
	// call.
	PartOpened
)

// WaitType labels the shape of the "hole" the winning tile completed.
type WaitType int

const (
	SingleWait WaitType = iota
	ClosedWait
	EdgeWait
	DualPonWait
	SideWait
	ThirteenOrphans1Wait
	ThirteenOrphans13Wait
)

// DivisionPart is one structural group (or the whole-hand thirteen-orphans
// shape) inside a Division.
type DivisionPart struct {
	Kind  PartKind
	Tiles TileCount
	State PartState
}

// NewHeadPart builds a pair of identical tiles at index.
func NewHeadPart(index int, state PartState) DivisionPart {
	return DivisionPart{Kind: PartHead, Tiles: NewTileCountFromIndices(index, index), State: state}
}

// NewTriplePart builds a triplet of identical tiles at index.
func NewTriplePart(index int, state PartState) DivisionPart {
	return DivisionPart{Kind: PartTriple, Tiles: NewTileCountFromIndices(index, index, index), State: state}
}

// NewQuadPart builds a quad of identical tiles at index.
func NewQuadPart(index int, state PartState) DivisionPart {
	return DivisionPart{Kind: PartQuad, Tiles: NewTileCountFromIndices(index, index, index, index), State: state}
}

// NewSequencePart builds a run starting at index. index must be a valid
// sequence start (the lower six positions of a numeric suit).
func NewSequencePart(index int, state PartState) (DivisionPart, error) {
	if !isSequenceStart[index] {
		return DivisionPart{}, ErrInvalidSequenceStart
	}
	return DivisionPart{
		Kind:  PartSequence,
		Tiles: NewTileCountFromIndices(index, index+1, index+2),
		State: state,
	}, nil
}

// NewThirteenOrphansPart builds the single whole-hand part for the
// thirteen-orphans form: one of every terminal/honor tile plus one extra
// copy at headIndex.
func NewThirteenOrphansPart(headIndex int, state PartState) DivisionPart {
	indices := append(append([]int{}, terminalsAndHonors...), headIndex)
	return DivisionPart{Kind: PartThirteenOrphans, Tiles: NewTileCountFromIndices(indices...), State: state}
}

// NewPartFromCall maps a revealed Call onto the DivisionPart it
// contributes to a decomposition: CHII becomes a sequence, PON a triple,
// and any KAN a quad. Concealed kans report PartConcealed; every other
// call reports PartOpened.
func NewPartFromCall(call Call) DivisionPart {
	var kind PartKind
	switch call.Kind {
	case CallChii:
		kind = PartSequence
	case CallPon:
		kind = PartTriple
	default:
		kind = PartQuad
	}

	state := PartOpened
	if call.Kind == CallConcealedKan {
		state = PartConcealed
	}

	return DivisionPart{Kind: kind, Tiles: call.Tiles, State: state}
}

// Division is one complete way to decompose a winning hand: an ordered
// list of parts plus the label of the wait shape the winning tile
// completed.
type Division struct {
	Parts    []DivisionPart
	WaitType WaitType
}

// TileCount sums the tile counts of every part.
func (d Division) TileCount() TileCount {
	var sum TileCount
	for _, p := range d.Parts {
		sum = sum.Add(p.Tiles)
	}
	return sum
}

// NumConcealedTriplets counts parts that are a concealed triple or quad.
func (d Division) NumConcealedTriplets() int {
	n := 0
	for _, p := range d.Parts {
		if p.State == PartConcealed && (p.Kind == PartTriple || p.Kind == PartQuad) {
			n++
		}
	}
	return n
}

// NumQuads counts quad parts, concealed or not.
func (d Division) NumQuads() int {
	n := 0
	for _, p := range d.Parts {
		if p.Kind == PartQuad {
			n++
		}
	}
	return n
}
