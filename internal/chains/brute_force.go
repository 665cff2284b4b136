package chains

// CountBruteForce classifies every integer in [1, bound] independently
// by walking its chain from the integer itself. No caching, no shared
// state; it is the slowest strategy and serves as the reference oracle
// the other three are checked against.
func CountBruteForce(bound uint32) uint32 {
	var count uint32
	for i := uint32(1); i <= bound; i++ {
		if ReachesEightyNine(i) {
			count++
		}
	}
	return count
}
