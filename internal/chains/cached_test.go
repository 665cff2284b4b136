package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountBruteForceCached_MatchesBruteForce(t *testing.T) {
	tests := []struct {
		name  string
		bound uint32
	}{
		{name: "BoundOne", bound: 1},
		{name: "BoundHundred", bound: 100},
		{name: "BoundThousand", bound: 1_000},
		{name: "BoundHundredThousand", bound: 100_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CountBruteForce(tt.bound), CountBruteForceCached(tt.bound))
		})
	}
}

func TestCountBruteForceCached_Idempotent(t *testing.T) {
	// The memo tables are local to each call; a second run must see
	// none of the first run's state.
	first := CountBruteForceCached(10_000)
	second := CountBruteForceCached(10_000)
	assert.Equal(t, first, second)
}

func BenchmarkCountBruteForce(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountBruteForce(99_999)
	}
}

func BenchmarkCountBruteForceCached(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountBruteForceCached(99_999)
	}
}
