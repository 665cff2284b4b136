package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSquigitTable_MatchesClassifier(t *testing.T) {
	table := buildSquigitTable()

	// Every populated index must agree with a direct chain walk.
	for i := uint32(1); i <= maxSquigit; i++ {
		require.Equal(t, ReachesEightyNine(i), table[i], "table disagrees at %d", i)
	}
}

func TestBuildSquigitTable_SpotChecks(t *testing.T) {
	table := buildSquigitTable()

	assert.True(t, table[89])
	assert.True(t, table[85])
	assert.False(t, table[1])
	assert.False(t, table[44])
	// 567 is the squigit of 9_999_999, the largest index ever queried.
	assert.Equal(t, ReachesEightyNine(567), table[567])
}

func TestCountSquigitLookup_SmallBounds(t *testing.T) {
	tests := []struct {
		name  string
		bound uint32
	}{
		{name: "BoundOne", bound: 1},
		{name: "BoundTen", bound: 10},
		{name: "BoundThousand", bound: 1_000},
		{name: "BoundHundredThousand", bound: 100_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CountBruteForce(tt.bound), CountSquigitLookup(tt.bound))
		})
	}
}

func BenchmarkCountSquigitLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountSquigitLookup(99_999)
	}
}
