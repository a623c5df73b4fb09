package testutil

// LongestProgression returns the length of the longest index subsequence of a
// non-decreasing stream forming an arithmetic progression, by exhaustive
// dynamic programming over all index pairs.
func LongestProgression(stream []uint64) int {
	n := len(stream)
	if n <= 2 {
		return n
	}

	best := 2
	dp := make([][]int, n)
	for i := range dp {
		dp[i] = make([]int, n)
	}
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			dp[i][j] = 2
			d := stream[j] - stream[i]
			if stream[i] < d {
				continue
			}
			want := stream[i] - d
			for m := 0; m < i; m++ {
				if stream[m] == want && dp[m][i]+1 > dp[i][j] {
					dp[i][j] = dp[m][i] + 1
				}
			}
			if dp[i][j] > best {
				best = dp[i][j]
			}
		}
	}
	return best
}

// IsProgression reports whether values have a constant consecutive difference.
func IsProgression(values []uint64) bool {
	if len(values) < 3 {
		return true
	}
	d := values[1] - values[0]
	for i := 2; i < len(values); i++ {
		if values[i]-values[i-1] != d {
			return false
		}
	}
	return true
}

// IsSubsequence reports whether values occur in stream at increasing indices.
func IsSubsequence(values, stream []uint64) bool {
	i := 0
	for _, v := range stream {
		if i < len(values) && values[i] == v {
			i++
		}
	}
	return i == len(values)
}
