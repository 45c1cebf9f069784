// Package store is the owning container for cards and sprints. The original
// board kept this state inside its view layer; here it lives in one explicit
// place so the rule engines stay pure and testable. All reads hand out deep
// copies, never the backing slices.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelcosta/taskboard/internal/board"
	"github.com/rafaelcosta/taskboard/internal/capacity"
	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/workflow"
)

type Store struct {
	now   func() time.Time
	newID func() string

	cards   []domain.Card
	sprints []domain.Sprint
}

type Option func(*Store)

// WithClock overrides the time source, used by tests for deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides ID minting, used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cards returns a snapshot of all cards.
func (s *Store) Cards() []domain.Card {
	out := make([]domain.Card, 0, len(s.cards))
	for i := range s.cards {
		out = append(out, s.cards[i].Clone())
	}
	return out
}

// Sprints returns a snapshot of all sprints.
func (s *Store) Sprints() []domain.Sprint {
	out := make([]domain.Sprint, 0, len(s.sprints))
	for i := range s.sprints {
		out = append(out, s.sprints[i].Clone())
	}
	return out
}

// Card returns a snapshot of one card.
func (s *Store) Card(cardID string) (domain.Card, error) {
	c := s.findCard(cardID)
	if c == nil {
		return domain.Card{}, fmt.Errorf("cartão %s não encontrado", cardID)
	}
	return c.Clone(), nil
}

// Sprint returns a snapshot of one sprint.
func (s *Store) Sprint(sprintID string) (domain.Sprint, error) {
	sp := s.findSprint(sprintID)
	if sp == nil {
		return domain.Sprint{}, fmt.Errorf("sprint %s não encontrada", sprintID)
	}
	return sp.Clone(), nil
}

// CreateCardInput carries the form fields for a new card. Required-field
// validation (title, assignee, reporter) belongs to the form layer.
type CreateCardInput struct {
	Title          string
	Description    string
	ClientCardID   string
	IssueType      domain.IssueType
	Priority       domain.Priority
	Assignee       string
	Reporter       string
	Status         domain.Status
	Sprint         string
	StoryPoints    int
	PlannedDueDate *time.Time
	Labels         []string
}

// CreateCard mints a new card with the next dense card number and records a
// creation history entry.
func (s *Store) CreateCard(in CreateCardInput) domain.Card {
	now := s.now()
	status := in.Status
	if status == "" {
		status = domain.StatusBacklog
	}
	c := domain.Card{
		ID:             s.newID(),
		CardNumber:     board.NextCardNumber(s.cards),
		ClientCardID:   in.ClientCardID,
		Title:          in.Title,
		Description:    in.Description,
		IssueType:      in.IssueType,
		Priority:       in.Priority,
		Assignee:       in.Assignee,
		Reporter:       in.Reporter,
		Status:         status,
		Sprint:         in.Sprint,
		StoryPoints:    in.StoryPoints,
		CreatedAt:      now,
		PlannedDueDate: in.PlannedDueDate,
		Labels:         append([]string(nil), in.Labels...),
	}
	c.StampCompletion(now)
	c.AppendHistory(domain.HistoryEntry{
		ID:          s.newID(),
		Action:      domain.ActionCreation,
		Description: fmt.Sprintf("Cartão #%d criado", c.CardNumber),
		Author:      in.Reporter,
		Timestamp:   now,
	})
	s.cards = append(s.cards, c)
	return c.Clone()
}

// MoveCard commits a status change after consulting the permission engine.
// A rejected move returns the engine's reason and leaves the card untouched.
func (s *Store) MoveCard(cardID string, to domain.Status, user domain.TeamMember) (domain.Card, error) {
	c := s.findCard(cardID)
	if c == nil {
		return domain.Card{}, fmt.Errorf("cartão %s não encontrado", cardID)
	}
	from := c.Status
	decision := workflow.CanMoveCard(c, from, to, user)
	if !decision.CanMove {
		return domain.Card{}, fmt.Errorf("%s", decision.Reason)
	}

	now := s.now()
	c.Status = to
	c.StampCompletion(now)
	c.AppendHistory(workflow.NewStatusChange(s.newID(), from, to, user.Name, now))
	return c.Clone(), nil
}

// SetStoryPoints updates a card's estimate and records the change.
func (s *Store) SetStoryPoints(cardID string, points int, author string) error {
	c := s.findCard(cardID)
	if c == nil {
		return fmt.Errorf("cartão %s não encontrado", cardID)
	}
	old := c.StoryPoints
	if old == points {
		return nil
	}
	c.StoryPoints = points
	c.AppendHistory(domain.HistoryEntry{
		ID:          s.newID(),
		Action:      domain.ActionUpdate,
		Description: fmt.Sprintf("Story points alterados de %d para %d", old, points),
		Author:      author,
		Timestamp:   s.now(),
		Field:       "storyPoints",
		OldValue:    fmt.Sprintf("%d", old),
		NewValue:    fmt.Sprintf("%d", points),
	})
	return nil
}

// SetPriority updates a card's priority and records the change.
func (s *Store) SetPriority(cardID string, priority domain.Priority, author string) error {
	c := s.findCard(cardID)
	if c == nil {
		return fmt.Errorf("cartão %s não encontrado", cardID)
	}
	old := c.Priority
	if old == priority {
		return nil
	}
	c.Priority = priority
	c.AppendHistory(domain.HistoryEntry{
		ID:          s.newID(),
		Action:      domain.ActionUpdate,
		Description: fmt.Sprintf("Prioridade alterada de %s para %s", old, priority),
		Author:      author,
		Timestamp:   s.now(),
		Field:       "priority",
		OldValue:    string(old),
		NewValue:    string(priority),
	})
	return nil
}

// DeleteCard removes a card outright. There is no tombstone; the number is
// simply never handed out again.
func (s *Store) DeleteCard(cardID string) error {
	for i := range s.cards {
		if s.cards[i].ID == cardID {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cartão %s não encontrado", cardID)
}

// AddComment appends a comment and its audit entry.
func (s *Store) AddComment(cardID, text, author string) (domain.Comment, error) {
	c := s.findCard(cardID)
	if c == nil {
		return domain.Comment{}, fmt.Errorf("cartão %s não encontrado", cardID)
	}
	now := s.now()
	comment := domain.Comment{
		ID:        s.newID(),
		Text:      text,
		Author:    author,
		CreatedAt: now,
	}
	c.Comments = append(c.Comments, comment)
	c.AppendHistory(domain.HistoryEntry{
		ID:          s.newID(),
		Action:      domain.ActionCommentAdded,
		Description: fmt.Sprintf("Comentário adicionado por %s", author),
		Author:      author,
		Timestamp:   now,
	})
	return comment, nil
}

// EditComment replaces a comment's text, latching its edited flag.
func (s *Store) EditComment(cardID, commentID, text, author string) error {
	c := s.findCard(cardID)
	if c == nil {
		return fmt.Errorf("cartão %s não encontrado", cardID)
	}
	comment := c.FindComment(commentID)
	if comment == nil {
		return fmt.Errorf("comentário %s não encontrado", commentID)
	}
	now := s.now()
	comment.Edit(text, now)
	c.AppendHistory(domain.HistoryEntry{
		ID:          s.newID(),
		Action:      domain.ActionCommentEdited,
		Description: fmt.Sprintf("Comentário editado por %s", author),
		Author:      author,
		Timestamp:   now,
	})
	return nil
}

// DeleteComment removes a comment; the audit trail keeps the deletion record.
func (s *Store) DeleteComment(cardID, commentID, author string) error {
	c := s.findCard(cardID)
	if c == nil {
		return fmt.Errorf("cartão %s não encontrado", cardID)
	}
	for i := range c.Comments {
		if c.Comments[i].ID == commentID {
			c.Comments = append(c.Comments[:i], c.Comments[i+1:]...)
			c.AppendHistory(domain.HistoryEntry{
				ID:          s.newID(),
				Action:      domain.ActionCommentDeleted,
				Description: fmt.Sprintf("Comentário removido por %s", author),
				Author:      author,
				Timestamp:   s.now(),
			})
			return nil
		}
	}
	return fmt.Errorf("comentário %s não encontrado", commentID)
}

// SetScenarioStatus records a manual tester verdict on a card scenario.
func (s *Store) SetScenarioStatus(cardID, scenarioID string, status domain.ScenarioStatus, actualResult string) error {
	c := s.findCard(cardID)
	if c == nil {
		return fmt.Errorf("cartão %s não encontrado", cardID)
	}
	scenario := c.FindScenario(scenarioID)
	if scenario == nil {
		return fmt.Errorf("cenário %s não encontrado", scenarioID)
	}
	scenario.SetStatus(status, actualResult)
	return nil
}

// CreateSprintInput carries the sprint form fields. Weeks and holidays feed
// the per-developer allowance; capacity follows from the team and absences.
type CreateSprintInput struct {
	Name          string
	Goal          string
	StartDate     time.Time
	EndDate       time.Time
	Holidays      int
	TeamMembers   []string
	AbsentMembers []domain.AbsentMember
}

// CreateSprint derives the point budget and registers the sprint in planning
// state.
func (s *Store) CreateSprint(in CreateSprintInput) domain.Sprint {
	now := s.now()
	sp := domain.Sprint{
		ID:            s.newID(),
		Name:          in.Name,
		Goal:          in.Goal,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Status:        domain.SprintPlanning,
		TeamMembers:   append([]string(nil), in.TeamMembers...),
		AbsentMembers: append([]domain.AbsentMember(nil), in.AbsentMembers...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sp.StoryPointsPerDeveloper = capacity.StoryPointsByWeeks(sp.Weeks(), in.Holidays)
	sp.Capacity = capacity.SprintCapacity(sp.TeamMembers, sp.StoryPointsPerDeveloper, sp.AbsentMembers)
	s.sprints = append(s.sprints, sp)
	return sp.Clone()
}

// StartSprint activates a sprint. At most one sprint may be active.
func (s *Store) StartSprint(sprintID string) error {
	sp := s.findSprint(sprintID)
	if sp == nil {
		return fmt.Errorf("sprint %s não encontrada", sprintID)
	}
	for i := range s.sprints {
		if s.sprints[i].Status == domain.SprintActive && s.sprints[i].ID != sprintID {
			return fmt.Errorf("a sprint %q já está ativa; finalize-a antes de iniciar outra", s.sprints[i].Name)
		}
	}
	sp.Status = domain.SprintActive
	sp.UpdatedAt = s.now()
	return nil
}

// CompleteSprint marks a sprint as completed.
func (s *Store) CompleteSprint(sprintID string) error {
	return s.setSprintStatus(sprintID, domain.SprintCompleted)
}

// CancelSprint marks a sprint as cancelled.
func (s *Store) CancelSprint(sprintID string) error {
	return s.setSprintStatus(sprintID, domain.SprintCancelled)
}

func (s *Store) setSprintStatus(sprintID string, status domain.SprintStatus) error {
	sp := s.findSprint(sprintID)
	if sp == nil {
		return fmt.Errorf("sprint %s não encontrada", sprintID)
	}
	sp.Status = status
	sp.UpdatedAt = s.now()
	return nil
}

// DeleteSprint removes a sprint after reverting its cards to the backlog, so
// no card is left pointing at a gone sprint.
func (s *Store) DeleteSprint(sprintID string) error {
	sp := s.findSprint(sprintID)
	if sp == nil {
		return fmt.Errorf("sprint %s não encontrada", sprintID)
	}
	for i := range s.cards {
		if s.cards[i].Sprint == sp.Name {
			s.cards[i].Sprint = ""
		}
	}
	for i := range s.sprints {
		if s.sprints[i].ID == sprintID {
			s.sprints = append(s.sprints[:i], s.sprints[i+1:]...)
			return nil
		}
	}
	return nil
}

// AssignToSprint moves the selected backlog cards into a sprint after the
// capacity check. On rejection nothing changes.
func (s *Store) AssignToSprint(sprintID string, cardIDs []string) error {
	sp := s.findSprint(sprintID)
	if sp == nil {
		return fmt.Errorf("sprint %s não encontrada", sprintID)
	}

	selected := make([]domain.Card, 0, len(cardIDs))
	for _, id := range cardIDs {
		c := s.findCard(id)
		if c == nil {
			return fmt.Errorf("cartão %s não encontrado", id)
		}
		selected = append(selected, *c)
	}

	if err := capacity.ValidateAssignment(sp, s.SprintCards(sp.Name), selected); err != nil {
		return err
	}

	for _, id := range cardIDs {
		c := s.findCard(id)
		c.Sprint = sp.Name
		if c.Status == domain.StatusBacklog {
			c.Status = domain.StatusPlanejado
		}
	}
	return nil
}

// SprintCards returns snapshots of the cards belonging to the named sprint.
func (s *Store) SprintCards(sprintName string) []domain.Card {
	var out []domain.Card
	for i := range s.cards {
		if s.cards[i].Sprint == sprintName {
			out = append(out, s.cards[i].Clone())
		}
	}
	return out
}

// ActiveSprint returns the single active sprint, if any.
func (s *Store) ActiveSprint() (domain.Sprint, bool) {
	for i := range s.sprints {
		if s.sprints[i].Status == domain.SprintActive {
			return s.sprints[i].Clone(), true
		}
	}
	return domain.Sprint{}, false
}

func (s *Store) findCard(cardID string) *domain.Card {
	for i := range s.cards {
		if s.cards[i].ID == cardID {
			return &s.cards[i]
		}
	}
	return nil
}

func (s *Store) findSprint(sprintID string) *domain.Sprint {
	for i := range s.sprints {
		if s.sprints[i].ID == sprintID {
			return &s.sprints[i]
		}
	}
	return nil
}
