package matching

import "strings"

// Search runs the full pipeline over a candidate snapshot: forbidden
// ingredient exclusion, attribute filters, match scoring, match threshold
// and ranking. It is pure and safe to call concurrently against the same
// snapshot.
//
// Exclusion runs before any scoring: one forbidden ingredient vetoes a
// recipe no matter how well the rest of it matches. The match threshold is
// applied only when the query carried an available-ingredient set; without
// one every result has a nil MatchPercent and MinMatch is ignored.
func Search(candidates []Candidate, q Query) []Result {
	difficulty, haveDifficulty := ParseDifficulty(q.Difficulty)
	text := strings.ToLower(strings.TrimSpace(q.Text))

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if intersects(c.IngredientIDs, q.ForbiddenIDs) {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(c.Title), text) {
			continue
		}
		if q.MaxTime > 0 && c.CookingTime > q.MaxTime {
			continue
		}
		if haveDifficulty && c.Difficulty != difficulty {
			continue
		}
		if q.CategoryID != 0 && !containsID(c.CategoryIDs, q.CategoryID) {
			continue
		}

		r := Result{Candidate: c}
		if q.HasIngredients {
			percent, missing := ComputeMatch(c.IngredientIDs, q.IngredientIDs)
			if percent < q.MinMatch {
				continue
			}
			r.MatchPercent = &percent
			r.MissingIDs = missing
		}
		results = append(results, r)
	}

	Rank(results, q.Sort)
	return results
}

func intersects(ids, others []uint) bool {
	if len(others) == 0 {
		return false
	}
	set := make(map[uint]struct{}, len(others))
	for _, id := range others {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
