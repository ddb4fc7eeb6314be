// Package searchstate holds the free-text filter and the pinned transaction
// shared by transaction views. A State is created per session and passed by
// reference to its consumers; there is no package-level instance.
package searchstate

import (
	"strings"
	"sync"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// State holds a query and an optional pinned transaction. It is safe for
// concurrent use.
type State struct {
	mu       sync.Mutex
	query    string
	selected *domain.Transaction
}

// New returns an empty search state.
func New() *State {
	return &State{}
}

// SetQuery replaces the query verbatim; callers are expected to trim and
// normalize before calling. When the trimmed query becomes empty the pinned
// selection is cleared.
func (s *State) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query

	if strings.TrimSpace(query) == "" {
		s.selected = nil
	}
}

// Query returns the current query.
func (s *State) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query
}

// SetSelected pins the given transaction, or clears the pin when txn is nil.
func (s *State) SetSelected(txn *domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = txn
}

// Selected returns the pinned transaction, or nil.
func (s *State) Selected() *domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected
}

// Filter returns the transactions matching the current query.
func (s *State) Filter(txns []domain.Transaction) []domain.Transaction {
	query := s.Query()

	matched := make([]domain.Transaction, 0, len(txns))

	for _, txn := range txns {
		if Matches(query, txn) {
			matched = append(matched, txn)
		}
	}

	return matched
}

// Matches reports whether the transaction matches the query as a
// case-insensitive substring of its description, category (raw value or
// display label) or type. An empty query matches everything.
func Matches(query string, txn domain.Transaction) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(txn.Description), query) {
		return true
	}

	if strings.Contains(strings.ToLower(txn.Category), query) {
		return true
	}

	if label, ok := domain.CategoryLabels[txn.Category]; ok {
		if strings.Contains(strings.ToLower(label), query) {
			return true
		}
	}

	return strings.Contains(strings.ToLower(txn.Type), query)
}
