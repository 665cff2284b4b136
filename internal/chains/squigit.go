// Package chains counts how many integers below ten million have a
// square-digit chain that reaches 89 (Project Euler problem 92). The
// same count is computed by four competing strategies; the harness runs
// them all and their agreement doubles as a correctness cross-check.
package chains

const (
	// DefaultBound is the inclusive upper bound from the problem
	// statement: every integer in [1, 9_999_999] is classified.
	DefaultBound uint32 = 9_999_999

	// maxSquigit is the largest squigit any number up to DefaultBound
	// can produce: seven digits of 9 give 7 * 9^2 = 567.
	maxSquigit = 567

	// tableSize leaves headroom above maxSquigit so the lookup tables
	// never need a bounds check on intermediate chain values.
	tableSize = 1024
)

// Squigit returns the sum of the squares of the decimal digits of v.
// Squigit(0) is 0.
func Squigit(v uint32) uint32 {
	var sum uint32
	for v != 0 {
		d := v % 10
		sum += d * d
		v /= 10
	}
	return sum
}

// ReachesEightyNine reports whether the square-digit chain starting at
// start terminates at 89 rather than 1. Every chain from a positive
// integer reaches exactly one of the two fixed points, so the loop
// needs no cycle detection. start must be >= 1.
func ReachesEightyNine(start uint32) bool {
	v := start
	for v != 1 && v != 89 {
		v = Squigit(v)
	}
	return v == 89
}

// Chain returns the full value sequence from start to the first fixed
// point, inclusive of both endpoints. Chains below ten million never
// exceed 12 values. start must be >= 1.
func Chain(start uint32) []uint32 {
	seq := []uint32{start}
	v := start
	for v != 1 && v != 89 {
		v = Squigit(v)
		seq = append(seq, v)
	}
	return seq
}
