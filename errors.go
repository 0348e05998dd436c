package mahjong

import "errors"

// Sentinel errors surfaced by the engine. Every error is returned to the
// caller; nothing is caught or retried internally, and no scratch state is
// left visible once an error escapes (mutations are undone before return).
var (
	// ErrInvalidHandSize means the concealed tile count is inconsistent
	// with the shape the checker expects (e.g. not 3n+1 or not 13).
	ErrInvalidHandSize = errors.New("mahjong: invalid hand size")

	// ErrNotComplete means Decompose was called on a hand whose shanten
	// is not -1, or whose winning tile is missing.
	ErrNotComplete = errors.New("mahjong: hand is not complete")

	// ErrInvalidCallShape means the tiles given to a call do not match
	// that call kind's shape (wrong count, not identical, not a run).
	ErrInvalidCallShape = errors.New("mahjong: invalid call shape")

	// ErrInvalidSequenceStart means a sequence part was constructed on
	// an index that is not a valid sequence start.
	ErrInvalidSequenceStart = errors.New("mahjong: invalid sequence start")

	// ErrInvalidTile means a tile outside the 34-index universe (an ETC
	// family / bonus tile) was presented where only indexable tiles are
	// permitted.
	ErrInvalidTile = errors.New("mahjong: invalid tile")

	// ErrAmbiguousWait means decomposition could not classify the wait
	// shape of the winning tile. Unreachable for well-formed, complete
	// hands; surfaced rather than silently guessed at.
	ErrAmbiguousWait = errors.New("mahjong: ambiguous wait")

	// ErrParseError means a hand, call, or tile string passed to the
	// parser collaborator did not match the expected grammar.
	ErrParseError = errors.New("mahjong: parse error")
)
