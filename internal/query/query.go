package query

import (
	"sort"
	"strings"

	"promptdeck/internal/corpus"
)

// All is the sentinel category meaning "no category filter".
const All = "all"

// Stats are aggregate numbers over the whole corpus, independent of any
// active filter.
type Stats struct {
	Total          int
	HighEngagement int
	CategoryCount  int
}

// Engine answers taxonomy, filter, and stats queries against a corpus store.
// It is stateless: every call recomputes from the store, so results stay
// correct without any cross-call caching.
type Engine struct {
	store *corpus.Store
}

func New(store *corpus.Store) *Engine {
	return &Engine{store: store}
}

// Taxonomy returns every distinct category key referenced anywhere in the
// corpus, each exactly once, sorted ascending. Keys compare case-sensitively.
func (e *Engine) Taxonomy() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, item := range e.store.Items() {
		for _, c := range item.Categories {
			if !seen[c] {
				seen[c] = true
				keys = append(keys, c)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// Filter returns the prompts matching both the category clause and the
// search clause, in corpus order.
//
// The category clause passes when category is All or is one of the item's
// keys (exact, case-sensitive). The search clause passes when search is empty
// or the item's content contains it as a case-insensitive substring. An
// unknown category yields an empty result, not an error.
func (e *Engine) Filter(category, search string) []corpus.Item {
	needle := strings.ToLower(search)

	var out []corpus.Item
	for _, item := range e.store.Items() {
		if !matchesCategory(item, category) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Content), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesCategory(item corpus.Item, category string) bool {
	if category == All {
		return true
	}
	for _, c := range item.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Stats recomputes the corpus-wide aggregates. It always reads the full
// corpus regardless of any filter the caller has active.
func (e *Engine) Stats() Stats {
	s := Stats{
		Total:         e.store.Len(),
		CategoryCount: len(e.Taxonomy()),
	}
	for _, item := range e.store.Items() {
		if item.Engagement == corpus.EngagementHigh {
			s.HighEngagement++
		}
	}
	return s
}
