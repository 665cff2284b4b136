package chains

// buildSquigitTable classifies every possible squigit value once. Any
// number up to seven digits has a squigit in [1, maxSquigit], so one
// pass over 567 small values covers the whole input range. Unused
// indices above maxSquigit are never queried.
func buildSquigitTable() *[tableSize]bool {
	var reaches89 [tableSize]bool
	for i := uint32(1); i <= maxSquigit; i++ {
		reaches89[i] = ReachesEightyNine(i)
	}
	return &reaches89
}

// CountSquigitLookup precomputes the classification of all 567
// possible squigit values, then classifies each integer in [1, bound]
// with a single transform and a single table lookup. bound must not
// exceed DefaultBound, the largest value the table's digit count
// covers.
func CountSquigitLookup(bound uint32) uint32 {
	reaches89 := buildSquigitTable()

	var count uint32
	for i := uint32(1); i <= bound; i++ {
		if reaches89[Squigit(i)] {
			count++
		}
	}
	return count
}
