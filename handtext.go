package mahjong

import (
	"regexp"
	"strconv"
	"strings"
)

// Package-level parsing grammar for the §6.1 hand-string format, e.g.
// "123m456p,c<789p,p^111s,k_2222m". The leading group (before the first
// comma) is the concealed tiles; every subsequent comma-separated token is
// a call. The source-seat character in a call token is validated against
// the grammar but otherwise discarded: Call carries no seat field, since
// which seat a tile was claimed from is outside the core's concern.
var (
	tileGroupPattern   = regexp.MustCompile(`^\d+[mpsz]$`)
	callTokenPattern   = regexp.MustCompile(`^([cpkbs])([<^>_])(\d+[mpsz])$`)
	concealedSection   = regexp.MustCompile(`^(\d+[mpsz])*$`)
	tileGroupFindRegex = regexp.MustCompile(`\d+[mpsz]`)

	callKindBySymbol = map[byte]CallKind{
		'c': CallChii,
		'p': CallPon,
		'k': CallConcealedKan,
		'b': CallBigMeldedKan,
		's': CallSmallMeldedKan,
	}
	seatSymbols = map[byte]bool{'<': true, '^': true, '>': true, '_': true}
)

// ParseTile parses a single tile token such as "5p" or "6z" into its
// 0..33 index.
func ParseTile(token string) (int, error) {
	if len(token) < 2 {
		return 0, ErrParseError
	}
	suit := token[len(token)-1]
	digits := token[:len(token)-1]

	number, err := strconv.Atoi(digits)
	if err != nil || number < 1 || number > 9 {
		return 0, ErrParseError
	}

	switch suit {
	case 'm':
		return TileIndex(FamilyMan, number)
	case 'p':
		return TileIndex(FamilyPin, number)
	case 's':
		return TileIndex(FamilySou, number)
	case 'z':
		switch {
		case number >= 1 && number <= 4:
			return TileIndex(FamilyWind, number)
		case number >= 5 && number <= 7:
			return TileIndex(FamilyDragon, number-4)
		default:
			return 0, ErrParseError
		}
	default:
		return 0, ErrParseError
	}
}

// ParseTileGroup parses a digit-run-plus-suit token such as "123m" into
// the list of tile indices it names, one per digit.
func ParseTileGroup(group string) ([]int, error) {
	if !tileGroupPattern.MatchString(group) {
		return nil, ErrParseError
	}

	suit := group[len(group)-1]
	digits := group[:len(group)-1]

	indices := make([]int, 0, len(digits))
	for i := 0; i < len(digits); i++ {
		index, err := ParseTile(string(digits[i]) + string(suit))
		if err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// ParseCall parses one call token, e.g. "c<789p" or "k_2222m", into a Call.
func ParseCall(token string) (Call, error) {
	match := callTokenPattern.FindStringSubmatch(token)
	if match == nil {
		return Call{}, ErrParseError
	}

	kind, ok := callKindBySymbol[match[1][0]]
	if !ok || !seatSymbols[match[2][0]] {
		return Call{}, ErrParseError
	}

	indices, err := ParseTileGroup(match[3])
	if err != nil {
		return Call{}, err
	}

	call, err := NewCall(kind, indices...)
	if err != nil {
		return Call{}, ErrParseError
	}
	return call, nil
}

// ParseHand parses a full hand string into a HandInfo. The winning tile
// and self-drawn flag are not part of the grammar; set the winning tile
// afterward with HandInfo.WithWinningTile and SelfDrawn directly.
func ParseHand(handStr string) (HandInfo, error) {
	segments := strings.Split(handStr, ",")

	if !concealedSection.MatchString(segments[0]) {
		return HandInfo{}, ErrParseError
	}
	groups := tileGroupFindRegex.FindAllString(segments[0], -1)

	var concealed TileCount
	for _, group := range groups {
		indices, err := ParseTileGroup(group)
		if err != nil {
			return HandInfo{}, err
		}
		for _, index := range indices {
			concealed[index]++
		}
	}

	calls := make([]Call, 0, len(segments)-1)
	for _, token := range segments[1:] {
		call, err := ParseCall(token)
		if err != nil {
			return HandInfo{}, err
		}
		calls = append(calls, call)
	}

	return HandInfo{Concealed: concealed, Calls: calls}, nil
}
