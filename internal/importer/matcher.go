package importer

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// NameMatcher picks the best candidate key for a name that had no exact
// match. Keys are lower-cased trimmed names in cache insertion order.
type NameMatcher interface {
	Match(name string, keys []string) (string, bool)
}

// ContainmentMatcher matches by substring containment in either direction.
// The first containing key in cache order wins, so match quality depends on
// insertion order. Short inputs match aggressively ("AC" matches "Acme").
type ContainmentMatcher struct{}

func (ContainmentMatcher) Match(name string, keys []string) (string, bool) {
	for _, key := range keys {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return key, true
		}
	}
	return "", false
}

// FuzzyMatcher ranks candidates by normalized Levenshtein distance and
// returns the closest one. Drop-in replacement for ContainmentMatcher when
// spreadsheet names are too noisy for containment.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(name string, keys []string) (string, bool) {
	ranks := fuzzy.RankFindNormalizedFold(name, keys)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
