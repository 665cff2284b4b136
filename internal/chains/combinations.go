package chains

import "fmt"

// CountDigitCombinations exploits the fact that a squigit depends only
// on the multiset of digits, never their order. Instead of visiting
// every integer it enumerates each multiset of digit values once
// (11_440 multisets for seven digit slots), classifies its squigit-sum
// through the precomputed table, and adds the number of distinct
// integers that multiset spells out.
//
// The counting covers the complete k-digit space, so bound must be of
// the form 10^k - 1 (9, 99, ... 9_999_999); any other bound is a
// contract violation and panics.
func CountDigitCombinations(bound uint32) uint32 {
	slots := digitSlots(bound)
	reaches89 := buildSquigitTable()

	var count uint32
	forEachDigitMultiset(slots, func(digits []uint32) {
		var sum uint32
		for _, d := range digits {
			sum += d * d
		}
		// The all-zero multiset is the integer 0, which is outside
		// [1, bound]; counting it would inflate the total.
		if sum == 0 {
			return
		}
		if reaches89[sum] {
			count += permutationCount(digits)
		}
	})
	return count
}

// digitSlots returns the number of digit positions spanned by bound,
// panicking unless bound is all nines.
func digitSlots(bound uint32) int {
	slots := 0
	for v := bound; v != 0; v /= 10 {
		if v%10 != 9 {
			panic(fmt.Sprintf("chains: combination counting needs an all-nines bound, got %d", bound))
		}
		slots++
	}
	if slots == 0 || slots > 7 {
		panic(fmt.Sprintf("chains: bound %d outside the supported 1..7 digit range", bound))
	}
	return slots
}

// forEachDigitMultiset calls fn once per multiset of `slots` digit
// values drawn from 0..9 with repetition. Digits are generated in
// non-decreasing order so each multiset appears exactly once, never
// once per arrangement. The slice passed to fn is reused between
// calls; fn must not retain it.
func forEachDigitMultiset(slots int, fn func(digits []uint32)) {
	combo := make([]uint32, slots)
	var walk func(pos int, min uint32)
	walk = func(pos int, min uint32) {
		if pos == slots {
			fn(combo)
			return
		}
		for d := min; d <= 9; d++ {
			combo[pos] = d
			walk(pos+1, d)
		}
	}
	walk(0, 0)
}

// permutationCount returns how many distinct digit-position
// arrangements the multiset has: len! divided by the factorial of each
// digit's multiplicity. The multinomial always divides evenly.
func permutationCount(digits []uint32) uint32 {
	var mult [10]uint32
	for _, d := range digits {
		mult[d]++
	}

	count := factorial(uint32(len(digits)))
	for _, m := range mult {
		if m > 1 {
			count /= factorial(m)
		}
	}
	return count
}

// factorial is exact in uint32 for the n <= 7 this package needs.
func factorial(n uint32) uint32 {
	ans := uint32(1)
	for ; n > 1; n-- {
		ans *= n
	}
	return ans
}
