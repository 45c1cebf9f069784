package domain

import "time"

type Card struct {
	ID           string
	CardNumber   int
	ClientCardID string

	Title       string
	Description string
	IssueType   IssueType
	Priority    Priority

	Assignee string
	Reporter string

	Status Status
	// Sprint holds the owning sprint's name; empty means the card sits in
	// the backlog.
	Sprint string

	// StoryPoints zero means unestimated.
	StoryPoints int

	CreatedAt      time.Time
	PlannedDueDate *time.Time
	ActualDueDate  *time.Time

	Labels             []string
	Attachments        []string
	AcceptanceCriteria []ChecklistItem
	DefinitionOfReady  []ChecklistItem
	DefinitionOfDone   []ChecklistItem
	TestScenarios      []TestScenario
	Comments           []Comment
	History            []HistoryEntry
}

// HasEstimate reports whether the card carries a story-point estimate.
func (c *Card) HasEstimate() bool {
	return c.StoryPoints > 0
}

// InBacklog reports whether the card belongs to no sprint.
func (c *Card) InBacklog() bool {
	return c.Sprint == ""
}

// StampCompletion records the completion date the first time the card reaches
// the final stage. The stamp is write-once: repeated calls leave an existing
// date untouched, and leaving the final stage later does not clear it.
func (c *Card) StampCompletion(now time.Time) {
	if c.Status != StatusFinalizado {
		return
	}
	if c.ActualDueDate != nil {
		return
	}
	t := now
	c.ActualDueDate = &t
}

// AppendHistory adds an audit entry. History is append-only; nothing in the
// model ever rewrites or drops recorded entries.
func (c *Card) AppendHistory(entry HistoryEntry) {
	c.History = append(c.History, entry)
}

// FindComment returns the comment with the given ID, or nil.
func (c *Card) FindComment(commentID string) *Comment {
	for i := range c.Comments {
		if c.Comments[i].ID == commentID {
			return &c.Comments[i]
		}
	}
	return nil
}

// FindScenario returns the test scenario with the given ID, or nil.
func (c *Card) FindScenario(scenarioID string) *TestScenario {
	for i := range c.TestScenarios {
		if c.TestScenarios[i].ID == scenarioID {
			return &c.TestScenarios[i]
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the store's backing slices.
func (c *Card) Clone() Card {
	out := *c
	out.PlannedDueDate = copyTime(c.PlannedDueDate)
	out.ActualDueDate = copyTime(c.ActualDueDate)
	out.Labels = append([]string(nil), c.Labels...)
	out.Attachments = append([]string(nil), c.Attachments...)
	out.AcceptanceCriteria = append([]ChecklistItem(nil), c.AcceptanceCriteria...)
	out.DefinitionOfReady = append([]ChecklistItem(nil), c.DefinitionOfReady...)
	out.DefinitionOfDone = append([]ChecklistItem(nil), c.DefinitionOfDone...)
	out.TestScenarios = append([]TestScenario(nil), c.TestScenarios...)
	out.Comments = append([]Comment(nil), c.Comments...)
	out.History = append([]HistoryEntry(nil), c.History...)
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
