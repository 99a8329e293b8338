package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func resultIDs(results []Result) []uint {
	ids := make([]uint, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func TestRankByTimeBreaksTiesOnMatch(t *testing.T) {
	results := []Result{
		{Candidate: Candidate{ID: 1, CookingTime: 30}, MatchPercent: pct(0.5)},
		{Candidate: Candidate{ID: 2, CookingTime: 30}, MatchPercent: pct(0.8)},
	}
	Rank(results, SortByTime)
	assert.Equal(t, []uint{2, 1}, resultIDs(results))
}

func TestRankByMatchNilSortsLast(t *testing.T) {
	results := []Result{
		{Candidate: Candidate{ID: 5}},
		{Candidate: Candidate{ID: 6}, MatchPercent: pct(0.0)},
		{Candidate: Candidate{ID: 7}, MatchPercent: pct(0.9)},
	}
	Rank(results, SortByMatch)
	assert.Equal(t, []uint{7, 6, 5}, resultIDs(results))
}

func TestRankByMatchTieBreaksOnIDDescending(t *testing.T) {
	results := []Result{
		{Candidate: Candidate{ID: 1}, MatchPercent: pct(0.5)},
		{Candidate: Candidate{ID: 9}, MatchPercent: pct(0.5)},
		{Candidate: Candidate{ID: 4}, MatchPercent: pct(0.5)},
	}
	Rank(results, SortByMatch)
	assert.Equal(t, []uint{9, 4, 1}, resultIDs(results))
}

func TestRankByRating(t *testing.T) {
	results := []Result{
		{Candidate: Candidate{ID: 1, AvgRating: 4.0}, MatchPercent: pct(0.2)},
		{Candidate: Candidate{ID: 2, AvgRating: 4.5}},
		{Candidate: Candidate{ID: 3, AvgRating: 4.0}, MatchPercent: pct(0.7)},
		{Candidate: Candidate{ID: 4}}, // zero ratings ranks as 0.0, not excluded
	}
	Rank(results, SortByRating)
	assert.Equal(t, []uint{2, 3, 1, 4}, resultIDs(results))
}

func TestRankByPopular(t *testing.T) {
	results := []Result{
		{Candidate: Candidate{ID: 1, FavoriteCount: 2}, MatchPercent: pct(0.9)},
		{Candidate: Candidate{ID: 2, FavoriteCount: 5}},
		{Candidate: Candidate{ID: 3, FavoriteCount: 2}, MatchPercent: pct(0.1)},
	}
	Rank(results, SortByPopular)
	assert.Equal(t, []uint{2, 1, 3}, resultIDs(results))
}

func TestRankDeterministic(t *testing.T) {
	build := func() []Result {
		return []Result{
			{Candidate: Candidate{ID: 3, CookingTime: 10, AvgRating: 3.0, FavoriteCount: 1}, MatchPercent: pct(0.4)},
			{Candidate: Candidate{ID: 1, CookingTime: 10, AvgRating: 3.0, FavoriteCount: 1}, MatchPercent: pct(0.4)},
			{Candidate: Candidate{ID: 2, CookingTime: 20, AvgRating: 3.0, FavoriteCount: 1}},
		}
	}
	for _, policy := range []SortPolicy{SortByMatch, SortByRating, SortByTime, SortByPopular, "bogus"} {
		first := build()
		Rank(first, policy)
		second := build()
		Rank(second, policy)
		require.Equal(t, resultIDs(first), resultIDs(second), "policy %s must be deterministic", policy)
	}
}
