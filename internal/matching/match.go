package matching

import "sort"

// ComputeMatch reports which fraction of a recipe's required ingredients is
// covered by the available set, and which required ids are missing. A recipe
// with no required ingredients scores 0.0 rather than dividing by zero.
// Missing ids come back sorted ascending.
func ComputeMatch(required, available []uint) (float64, []uint) {
	have := make(map[uint]struct{}, len(available))
	for _, id := range available {
		have[id] = struct{}{}
	}

	matched := 0
	var missing []uint
	for _, id := range required {
		if _, ok := have[id]; ok {
			matched++
		} else {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	if len(required) == 0 {
		return 0.0, nil
	}
	return float64(matched) / float64(len(required)), missing
}
