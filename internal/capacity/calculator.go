// Package capacity computes sprint story-point budgets and validates
// backlog-to-sprint moves against them. All functions are pure.
package capacity

import (
	"fmt"

	"github.com/rafaelcosta/taskboard/internal/domain"
)

// totalAbsencePenalty is the flat deduction per fully absent member. It is
// intentionally independent of the sprint's per-developer allowance.
const totalAbsencePenalty = 8

// StoryPointsByWeeks returns the per-developer point allowance for a sprint
// of the given duration, minus one point per holiday, floored at 1.
func StoryPointsByWeeks(weeks, holidays int) int {
	var base int
	switch weeks {
	case 2:
		base = 8
	case 3:
		base = 12
	case 4:
		base = 16
	default:
		base = 8
	}
	points := base - holidays
	if points < 1 {
		points = 1
	}
	return points
}

// SprintCapacity returns the sprint's total point budget: team size times the
// per-developer allowance, minus the flat penalty per total absence. Partial
// absences do not reduce capacity. The result never goes negative.
func SprintCapacity(teamMembers []string, storyPointsPerDeveloper int, absentMembers []domain.AbsentMember) int {
	total := len(teamMembers) * storyPointsPerDeveloper
	for _, m := range absentMembers {
		if m.Type == domain.AbsenceTotal {
			total -= totalAbsencePenalty
		}
	}
	if total < 0 {
		total = 0
	}
	return total
}

// ValidateAssignment checks a proposed move of selected cards into a sprint.
// Every selected card needs an estimate, and the combined points of cards
// already in the sprint plus the selection must fit the capacity. The error
// message is user-facing and states the exact overage.
func ValidateAssignment(sprint *domain.Sprint, sprintCards, selected []domain.Card) error {
	selectedPoints := 0
	for i := range selected {
		if !selected[i].HasEstimate() {
			return fmt.Errorf("o cartão #%d (%s) não possui story points estimados",
				selected[i].CardNumber, selected[i].Title)
		}
		selectedPoints += selected[i].StoryPoints
	}

	allocated := 0
	for i := range sprintCards {
		allocated += sprintCards[i].StoryPoints
	}

	if allocated+selectedPoints > sprint.Capacity {
		over := allocated + selectedPoints - sprint.Capacity
		return fmt.Errorf(
			"capacidade da sprint excedida em %d pontos (%d alocados + %d selecionados > capacidade %d)",
			over, allocated, selectedPoints, sprint.Capacity)
	}
	return nil
}
