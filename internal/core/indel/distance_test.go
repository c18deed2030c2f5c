package indel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"first empty", "", "abc", 3},
		{"second empty", "abcd", "", 4},
		{"identical", "kitten", "kitten", 0},
		{"one insertion", "this is a test", "this is a test!", 1},
		{"substitution costs two", "abc", "abd", 2},
		{"kitten sitting", "kitten", "sitting", 5},
		{"disjoint", "abc", "xyz", 6},
		{"transposition", "ab", "ba", 2},
		{"unicode code points", "naïve", "naive", 2},
		{"emoji", "a😀b", "ab", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Distance([]rune(tc.a), []rune(tc.b)))
			assert.Equal(t, tc.want, Distance([]rune(tc.b), []rune(tc.a)), "distance must be symmetric")
			assert.Equal(t, tc.want, Strings(tc.a, tc.b))
		})
	}
}

func TestDistanceIsLengthsMinusTwiceLCS(t *testing.T) {
	// For indel distance d = |a| + |b| - 2*LCS(a, b).
	a := []rune("the quick brown fox")
	b := []rune("quick brown the fox")
	lcs := longestCommonSubsequence(a, b)
	assert.Equal(t, len(a)+len(b)-2*lcs, Distance(a, b))
}

func longestCommonSubsequence(a, b []rune) int {
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[len(a)][len(b)]
}

func BenchmarkDistance(b *testing.B) {
	x := []rune("The quick brown fox jumps over the lazy dog")
	y := []rune("The quick brown dog jumps over the lazy fox!")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Distance(x, y)
	}
}
