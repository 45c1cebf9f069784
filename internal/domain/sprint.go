package domain

import "time"

type AbsentMember struct {
	Name string
	Type AbsenceType
}

type Sprint struct {
	ID        string
	Name      string
	Goal      string
	StartDate time.Time
	EndDate   time.Time
	Status    SprintStatus

	TeamMembers   []string
	AbsentMembers []AbsentMember

	// StoryPointsPerDeveloper and Capacity are derived at creation from the
	// sprint duration, holidays and absences.
	StoryPointsPerDeveloper int
	Capacity                int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Weeks returns the sprint duration in whole weeks, rounding partial weeks up.
func (s *Sprint) Weeks() int {
	days := int(s.EndDate.Sub(s.StartDate).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return (days + 6) / 7
}

// Clone returns a deep copy suitable for handing out as a snapshot.
func (s *Sprint) Clone() Sprint {
	out := *s
	out.TeamMembers = append([]string(nil), s.TeamMembers...)
	out.AbsentMembers = append([]AbsentMember(nil), s.AbsentMembers...)
	return out
}

type TeamMember struct {
	Name     string
	Role     Role
	Email    string
	IsActive bool
}
