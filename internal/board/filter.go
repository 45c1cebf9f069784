// Package board holds the pure filtering and derivation helpers the views
// run over card snapshots. Nothing here mutates its inputs.
package board

import (
	"strings"

	"github.com/rafaelcosta/taskboard/internal/domain"
)

// SprintAll is the dropdown sentinel meaning "no sprint constraint".
const SprintAll = "all"

// Filters is a composite card filter. Empty fields impose no constraint; the
// non-empty ones combine with AND.
type Filters struct {
	Priorities []domain.Priority
	Assignees  []string
	IssueTypes []string
	Sprints    []string
	Labels     []string
	SearchText string
}

// IsEmpty reports whether no criterion is set.
func (f Filters) IsEmpty() bool {
	return len(f.Priorities) == 0 &&
		len(f.Assignees) == 0 &&
		len(f.IssueTypes) == 0 &&
		len(f.Sprints) == 0 &&
		len(f.Labels) == 0 &&
		f.SearchText == ""
}

// MatchCard reports whether the card survives the composite filter plus the
// sprint dropdown selection.
func MatchCard(card *domain.Card, f Filters, selectedSprint string) bool {
	if selectedSprint != SprintAll && card.Sprint != selectedSprint {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, card.Priority) {
		return false
	}
	if len(f.Assignees) > 0 && !containsString(f.Assignees, card.Assignee) {
		return false
	}
	if len(f.IssueTypes) > 0 && !containsString(f.IssueTypes, string(card.IssueType)) {
		return false
	}
	if len(f.Sprints) > 0 {
		if card.Sprint == "" || !containsString(f.Sprints, card.Sprint) {
			return false
		}
	}
	if len(f.Labels) > 0 && !intersects(card.Labels, f.Labels) {
		return false
	}
	if f.SearchText != "" && !matchesSearch(card, f.SearchText) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against title,
// description and labels; any single hit is enough.
func matchesSearch(card *domain.Card, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(card.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(card.Description), needle) {
		return true
	}
	for _, label := range card.Labels {
		if strings.Contains(strings.ToLower(label), needle) {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(set []domain.Priority, v domain.Priority) bool {
	for _, p := range set {
		if p == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
