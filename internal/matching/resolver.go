package matching

import (
	"sort"
	"strconv"
	"strings"
)

// ResolveIngredients maps a mixed list of raw tokens to ingredient ids.
// A token that parses as a positive integer is taken as an id verbatim;
// unknown ids are not rejected here, downstream set intersections simply
// ignore them. Any other token is normalized and matched against the
// catalog by mutual substring containment: "перец" finds "болгарский перец"
// and a specific query also finds the shorter catalog name. The result is
// deduplicated and sorted ascending so callers get a deterministic set.
func ResolveIngredients(tokens []string, catalog []CatalogIngredient) []uint {
	seen := make(map[uint]struct{})

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if id, err := strconv.ParseUint(tok, 10, 64); err == nil {
			seen[uint(id)] = struct{}{}
			continue
		}
		norm := Normalize(tok)
		if norm == "" {
			// A whitespace-only token would be a substring of every
			// catalog name; it must never match anything.
			continue
		}
		for _, ing := range catalog {
			name := Normalize(ing.Name)
			if name == "" {
				continue
			}
			if strings.Contains(name, norm) || strings.Contains(norm, name) {
				seen[ing.ID] = struct{}{}
			}
		}
	}

	ids := make([]uint, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
