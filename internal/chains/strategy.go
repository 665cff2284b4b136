package chains

import "time"

// Strategy pairs a counting function with the name it is reported
// under. Every strategy answers the same question for the same bound;
// only the amount of work differs.
type Strategy struct {
	Name  string
	Count func(bound uint32) uint32
}

// Result is one timed strategy run.
type Result struct {
	Name    string
	Count   uint32
	Elapsed time.Duration
}

// Strategies returns the four strategies in their fixed reporting
// order, slowest first.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "brute_force", Count: CountBruteForce},
		{Name: "brute_force_cached", Count: CountBruteForceCached},
		{Name: "squigit_lookup", Count: CountSquigitLookup},
		{Name: "digit_combinations", Count: CountDigitCombinations},
	}
}

// Run executes one strategy against bound and measures wall-clock time
// around the call. Timing lives here so the strategies themselves stay
// pure counting functions.
func Run(s Strategy, bound uint32) Result {
	start := time.Now()
	count := s.Count(bound)
	return Result{
		Name:    s.Name,
		Count:   count,
		Elapsed: time.Since(start),
	}
}
