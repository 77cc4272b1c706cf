package matching

import "sort"

// Rank orders outcomes by matchCount, then total score, then profile data
// completeness. Candidate ID is the final tiebreak so the ordering is
// byte-for-byte reproducible for a fixed input.
func Rank(outcomes []Outcome) []Outcome {
	sorted := make([]Outcome, len(outcomes))
	copy(sorted, outcomes)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Quality.MatchCount != b.Quality.MatchCount {
			return a.Quality.MatchCount > b.Quality.MatchCount
		}
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.Quality.DataCompleteness != b.Quality.DataCompleteness {
			return a.Quality.DataCompleteness > b.Quality.DataCompleteness
		}
		return a.Candidate.ID.String() < b.Candidate.ID.String()
	})

	return sorted
}

// TopK returns the first k ranked outcomes.
func TopK(ranked []Outcome, k int) []Outcome {
	if k <= 0 || k >= len(ranked) {
		return ranked
	}
	return ranked[:k]
}
