package mahjong

// TileCount is a fixed-length count vector over the 34 tile kinds. It is
// an array, not a slice, so passing or assigning a TileCount always
// copies it — callers never need to defensively clone scratch state.
type TileCount [NumTileKinds]int

// NewTileCountFromIndices builds a TileCount by tallying one occurrence
// per entry in indices. Indices may repeat.
func NewTileCountFromIndices(indices ...int) TileCount {
	var tc TileCount
	for _, i := range indices {
		tc[i]++
	}
	return tc
}

// NumTiles returns the sum of all counts.
func (tc TileCount) NumTiles() int {
	total := 0
	for _, c := range tc {
		total += c
	}
	return total
}

// Add returns the element-wise sum of tc and other.
func (tc TileCount) Add(other TileCount) TileCount {
	var sum TileCount
	for i := range sum {
		sum[i] = tc[i] + other[i]
	}
	return sum
}

// Equal reports whether tc and other hold identical counts.
func (tc TileCount) Equal(other TileCount) bool {
	return tc == other
}

// FindEarliestNonzeroIndex scans from index (inclusive) upward and returns
// the first index with a nonzero count, or NumTileKinds if none remains.
// The sentinel return value lets recursive scans terminate cleanly without
// a separate bounds check at every call site.
func (tc TileCount) FindEarliestNonzeroIndex(from int) int {
	for from < NumTileKinds && tc[from] == 0 {
		from++
	}
	return from
}

// IsContainingOnly reports whether every tile of nonzero count lies within
// indices, i.e. the mass of tc is fully accounted for by indices.
func (tc TileCount) IsContainingOnly(indices []int) bool {
	sum := 0
	for _, i := range indices {
		sum += tc[i]
	}
	return sum == tc.NumTiles()
}
