package logic

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

// FilterCodes keeps the codes whose area name fuzzy-matches query. The
// relative order of codes is preserved so a sorted table stays sorted.
// An empty query keeps everything.
func FilterCodes(set domain.AreaSet, codes []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return codes
	}

	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = set.ByCode[code].Name
	}

	matched := make(map[int]bool)
	for _, m := range fuzzy.Find(query, names) {
		matched[m.Index] = true
	}

	out := make([]string, 0, len(matched))
	for i, code := range codes {
		if matched[i] {
			out = append(out, code)
		}
	}
	return out
}

// MatchPositions returns the byte offsets of name that match query, for
// highlighting. It is nil when nothing matches.
func MatchPositions(name, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
