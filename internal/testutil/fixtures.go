package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelcosta/taskboard/internal/domain"
)

var testCardCounter atomic.Int64

// Card options
type CardOption func(*domain.Card)

func WithStatus(s domain.Status) CardOption {
	return func(c *domain.Card) {
		c.Status = s
	}
}

func WithIssueType(t domain.IssueType) CardOption {
	return func(c *domain.Card) {
		c.IssueType = t
	}
}

func WithPriority(p domain.Priority) CardOption {
	return func(c *domain.Card) {
		c.Priority = p
	}
}

func WithAssignee(name string) CardOption {
	return func(c *domain.Card) {
		c.Assignee = name
	}
}

func WithSprint(name string) CardOption {
	return func(c *domain.Card) {
		c.Sprint = name
	}
}

func WithStoryPoints(p int) CardOption {
	return func(c *domain.Card) {
		c.StoryPoints = p
	}
}

func WithLabels(labels ...string) CardOption {
	return func(c *domain.Card) {
		c.Labels = labels
	}
}

func WithCardNumber(n int) CardOption {
	return func(c *domain.Card) {
		c.CardNumber = n
	}
}

func WithDescription(d string) CardOption {
	return func(c *domain.Card) {
		c.Description = d
	}
}

func NewTestCard(title string, opts ...CardOption) domain.Card {
	now := time.Now().UTC()
	c := domain.Card{
		ID:         uuid.New().String(),
		CardNumber: int(testCardCounter.Add(1)),
		Title:      title,
		IssueType:  domain.IssueTask,
		Priority:   domain.PriorityMedium,
		Assignee:   "Ana Souza",
		Reporter:   "Pedro Lima",
		Status:     domain.StatusBacklog,
		CreatedAt:  now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Sprint options
type SprintOption func(*domain.Sprint)

func WithSprintStatus(s domain.SprintStatus) SprintOption {
	return func(sp *domain.Sprint) {
		sp.Status = s
	}
}

func WithTeam(members ...string) SprintOption {
	return func(sp *domain.Sprint) {
		sp.TeamMembers = members
	}
}

func WithAbsence(name string, kind domain.AbsenceType) SprintOption {
	return func(sp *domain.Sprint) {
		sp.AbsentMembers = append(sp.AbsentMembers, domain.AbsentMember{Name: name, Type: kind})
	}
}

func WithCapacity(perDev, total int) SprintOption {
	return func(sp *domain.Sprint) {
		sp.StoryPointsPerDeveloper = perDev
		sp.Capacity = total
	}
}

func NewTestSprint(name string, opts ...SprintOption) domain.Sprint {
	now := time.Now().UTC()
	sp := domain.Sprint{
		ID:                      uuid.New().String(),
		Name:                    name,
		Goal:                    fmt.Sprintf("Meta da %s", name),
		StartDate:               now,
		EndDate:                 now.AddDate(0, 0, 14),
		Status:                  domain.SprintPlanning,
		TeamMembers:             []string{"Ana Souza", "Carlos Dias"},
		StoryPointsPerDeveloper: 8,
		Capacity:                16,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	for _, opt := range opts {
		opt(&sp)
	}
	return sp
}

func NewTestUser(name string, role domain.Role) domain.TeamMember {
	return domain.TeamMember{
		Name:     name,
		Role:     role,
		Email:    fmt.Sprintf("%s@example.com", uuid.New().String()[:8]),
		IsActive: true,
	}
}

func Checklist(completed ...bool) []domain.ChecklistItem {
	items := make([]domain.ChecklistItem, 0, len(completed))
	for i, done := range completed {
		items = append(items, domain.ChecklistItem{
			ID:        uuid.New().String(),
			Text:      fmt.Sprintf("item %d", i+1),
			Completed: done,
		})
	}
	return items
}
