package catalog

import (
	"fmt"
	"sort"
	"strings"

	"mall-bidding/internal/marketerrors"
	"mall-bidding/internal/models"
)

// Matcher maps a free-text shopper query to a ranked list of candidate
// stores using each store's static keyword inventory.
type Matcher struct {
	stores []models.Store
}

// NewMatcher creates a Matcher over the given store catalog.
func NewMatcher(stores []models.Store) *Matcher {
	return &Matcher{stores: stores}
}

// NewDemoMatcher creates a Matcher over the built-in 25-store catalog.
func NewDemoMatcher() *Matcher {
	return NewMatcher(Stores())
}

// StoreByID looks up a store in the catalog.
func (m *Matcher) StoreByID(storeID string) (models.Store, error) {
	for _, s := range m.stores {
		if s.StoreID == storeID {
			return s, nil
		}
	}
	return models.Store{}, fmt.Errorf("store %s: %w", storeID, marketerrors.ErrStoreNotFound)
}

// Match returns the stores whose inventory matches the query, ranked by
// relevance score descending. Ties keep catalog order. A store matches
// when the lower-cased query contains one of its inventory phrases, or
// one of its phrases contains the query's first token. An empty query
// matches nothing.
//
// Pure function of (query, catalog); no side effects.
func (m *Matcher) Match(query string) []models.StoreMatch {
	q := strings.ToLower(query)
	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return nil
	}
	first := tokens[0]

	var matches []models.StoreMatch
	for _, store := range m.stores {
		if !storeHasHit(q, first, store.Inventory) {
			continue
		}
		matches = append(matches, models.StoreMatch{
			StoreID:        store.StoreID,
			StoreName:      store.Name,
			RelevanceScore: relevanceScore(tokens, store.Inventory),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	})
	return matches
}

func storeHasHit(query, firstToken string, inventory []string) bool {
	for _, phrase := range inventory {
		if strings.Contains(query, phrase) || strings.Contains(phrase, firstToken) {
			return true
		}
	}
	return false
}

// relevanceScore sums the character length of every query token over
// every inventory phrase containing it. Longer, more specific token
// matches score higher; no normalization by inventory size.
func relevanceScore(tokens []string, inventory []string) int {
	score := 0
	for _, phrase := range inventory {
		for _, token := range tokens {
			if strings.Contains(phrase, token) {
				score += len(token)
			}
		}
	}
	return score
}
