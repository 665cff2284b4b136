package chains

// CountBruteForceCached walks the same range as CountBruteForce but
// memoizes every squigit value discovered mid-chain into two boolean
// tables, one per fixed point. A later chain that touches a cached
// value stops immediately instead of walking to 1 or 89 again.
//
// Entries only ever flip from unknown to true; a value's fixed point
// never changes, so the tables are append-only for the whole pass.
func CountBruteForceCached(bound uint32) uint32 {
	var goesTo1, goesTo89 [tableSize]bool
	var count uint32

	// Reused scratch buffer for the values visited by one chain.
	visited := make([]uint32, 0, 16)

	for i := uint32(1); i <= bound; i++ {
		visited = visited[:0]
		v := Squigit(i)

		reaches89 := false
		for {
			if v == 89 || goesTo89[v] {
				reaches89 = true
				break
			}
			if v == 1 || goesTo1[v] {
				break
			}
			visited = append(visited, v)
			v = Squigit(v)
		}

		if reaches89 {
			count++
			for _, u := range visited {
				goesTo89[u] = true
			}
		} else {
			for _, u := range visited {
				goesTo1[u] = true
			}
		}
	}

	return count
}
