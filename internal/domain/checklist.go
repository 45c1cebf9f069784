package domain

import "time"

type ChecklistItem struct {
	ID        string
	Text      string
	Completed bool
}

type TestScenario struct {
	ID             string
	Title          string
	Description    string
	ExpectedResult string
	ActualResult   string
	Status         ScenarioStatus
}

// SetStatus records a manual tester verdict. Scenarios toggle freely between
// pending, passed and failed; there is no forced ordering.
func (s *TestScenario) SetStatus(status ScenarioStatus, actualResult string) {
	s.Status = status
	s.ActualResult = actualResult
}

type Comment struct {
	ID        string
	Text      string
	Author    string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsEdited  bool
}

// Edit replaces the comment text and latches the edited flag. IsEdited stays
// true for the life of the comment once set.
func (c *Comment) Edit(text string, now time.Time) {
	c.Text = text
	t := now
	c.UpdatedAt = &t
	c.IsEdited = true
}

type HistoryEntry struct {
	ID          string
	Action      HistoryAction
	Description string
	Author      string
	Timestamp   time.Time

	// Field/OldValue/NewValue describe diffable changes; empty for actions
	// that have no before/after pair.
	Field    string
	OldValue string
	NewValue string
}
