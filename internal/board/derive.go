package board

import (
	"math"
	"sort"

	"github.com/rafaelcosta/taskboard/internal/domain"
)

// Column is one board lane holding the cards currently in its stage.
type Column struct {
	Status domain.Status
	Title  string
	Cards  []domain.Card
}

// DefaultColumns returns one empty column per workflow stage, in display order.
func DefaultColumns() []Column {
	cols := make([]Column, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		cols = append(cols, Column{Status: s, Title: s.DisplayName()})
	}
	return cols
}

// GroupByStatus partitions cards into fresh copies of the given columns by
// exact status match. A card whose status matches no column is dropped from
// the result, mirroring how the board treats stale state.
func GroupByStatus(columns []Column, cards []domain.Card) []Column {
	out := make([]Column, len(columns))
	index := make(map[domain.Status]int, len(columns))
	for i, col := range columns {
		out[i] = Column{Status: col.Status, Title: col.Title}
		index[col.Status] = i
	}
	for _, card := range cards {
		if i, ok := index[card.Status]; ok {
			out[i].Cards = append(out[i].Cards, card)
		}
	}
	return out
}

// UniqueAssignees returns the distinct assignee names across all cards.
// Output order is not part of the contract; it is sorted for stability.
func UniqueAssignees(cards []domain.Card) []string {
	set := make(map[string]bool)
	for i := range cards {
		if cards[i].Assignee != "" {
			set[cards[i].Assignee] = true
		}
	}
	return sortedKeys(set)
}

// UniqueSprints returns the distinct sprint names referenced by cards.
func UniqueSprints(cards []domain.Card) []string {
	set := make(map[string]bool)
	for i := range cards {
		if cards[i].Sprint != "" {
			set[cards[i].Sprint] = true
		}
	}
	return sortedKeys(set)
}

// UniqueLabels returns the distinct labels across all cards.
func UniqueLabels(cards []domain.Card) []string {
	set := make(map[string]bool)
	for i := range cards {
		for _, label := range cards[i].Labels {
			set[label] = true
		}
	}
	return sortedKeys(set)
}

// NextCardNumber returns the next free card number: one above the highest
// number currently in use, starting at 1 for an empty collection. It is
// recomputed from the full collection every call so deletions and imports
// never cause reuse.
func NextCardNumber(cards []domain.Card) int {
	max := 0
	for i := range cards {
		if cards[i].CardNumber > max {
			max = cards[i].CardNumber
		}
	}
	return max + 1
}

// CompletionPercentage returns the rounded percentage of completed checklist
// items. An empty checklist is 0, never a division by zero.
func CompletionPercentage(items []domain.ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, item := range items {
		if item.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
