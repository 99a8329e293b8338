package matching

import "sort"

// Rank orders results in place according to the sort policy. Every
// comparator is total: equal primary keys fall through to the documented
// secondary key and finally to recipe id descending, so two runs over the
// same input always produce the same order. An unrecognized policy falls
// back to id descending, the catalog's freshness ordering, and never fails.
func Rank(results []Result, policy SortPolicy) {
	var less func(a, b Result) bool

	switch policy {
	case SortByMatch:
		less = func(a, b Result) bool {
			if am, bm := matchKey(a), matchKey(b); am != bm {
				return am > bm
			}
			return a.ID > b.ID
		}
	case SortByRating:
		less = func(a, b Result) bool {
			if a.AvgRating != b.AvgRating {
				return a.AvgRating > b.AvgRating
			}
			if am, bm := matchKey(a), matchKey(b); am != bm {
				return am > bm
			}
			return a.ID > b.ID
		}
	case SortByTime:
		less = func(a, b Result) bool {
			if a.CookingTime != b.CookingTime {
				return a.CookingTime < b.CookingTime
			}
			if am, bm := matchKey(a), matchKey(b); am != bm {
				return am > bm
			}
			return a.ID > b.ID
		}
	case SortByPopular:
		less = func(a, b Result) bool {
			if a.FavoriteCount != b.FavoriteCount {
				return a.FavoriteCount > b.FavoriteCount
			}
			if am, bm := matchKey(a), matchKey(b); am != bm {
				return am > bm
			}
			return a.ID > b.ID
		}
	default:
		less = func(a, b Result) bool { return a.ID > b.ID }
	}

	sort.SliceStable(results, func(i, j int) bool { return less(results[i], results[j]) })
}

// matchKey treats an absent match fraction as lower than any computed one,
// so unscored results sort last under every policy that looks at the match.
func matchKey(r Result) float64 {
	if r.MatchPercent == nil {
		return -1
	}
	return *r.MatchPercent
}
