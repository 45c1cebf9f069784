package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/testutil"
)

func TestMatchCard_IdentityFilter(t *testing.T) {
	// All-empty filters plus the "all" dropdown match every card.
	cards := []domain.Card{
		testutil.NewTestCard("login", testutil.WithSprint("Sprint 1")),
		testutil.NewTestCard("backlog item"),
		testutil.NewTestCard("epic", testutil.WithIssueType(domain.IssueEpic), testutil.WithLabels("infra")),
	}
	for i := range cards {
		assert.True(t, MatchCard(&cards[i], Filters{}, SprintAll), "card=%s", cards[i].Title)
	}
}

func TestMatchCard_SprintDropdown(t *testing.T) {
	in := testutil.NewTestCard("a", testutil.WithSprint("Sprint 1"))
	out := testutil.NewTestCard("b", testutil.WithSprint("Sprint 2"))
	backlog := testutil.NewTestCard("c")

	assert.True(t, MatchCard(&in, Filters{}, "Sprint 1"))
	assert.False(t, MatchCard(&out, Filters{}, "Sprint 1"))
	assert.False(t, MatchCard(&backlog, Filters{}, "Sprint 1"))
}

func TestMatchCard_PrioritySet(t *testing.T) {
	high := testutil.NewTestCard("a", testutil.WithPriority(domain.PriorityHigh))
	low := testutil.NewTestCard("b", testutil.WithPriority(domain.PriorityLow))
	f := Filters{Priorities: []domain.Priority{domain.PriorityHigh, domain.PriorityCritical}}

	assert.True(t, MatchCard(&high, f, SprintAll))
	assert.False(t, MatchCard(&low, f, SprintAll))
}

func TestMatchCard_AssigneeSet(t *testing.T) {
	ana := testutil.NewTestCard("a", testutil.WithAssignee("Ana Souza"))
	bia := testutil.NewTestCard("b", testutil.WithAssignee("Bia Rocha"))
	f := Filters{Assignees: []string{"Ana Souza"}}

	assert.True(t, MatchCard(&ana, f, SprintAll))
	assert.False(t, MatchCard(&bia, f, SprintAll))
}

func TestMatchCard_IssueTypeSet(t *testing.T) {
	bug := testutil.NewTestCard("a", testutil.WithIssueType(domain.IssueBug))
	story := testutil.NewTestCard("b", testutil.WithIssueType(domain.IssueStory))
	f := Filters{IssueTypes: []string{"bug", "task"}}

	assert.True(t, MatchCard(&bug, f, SprintAll))
	assert.False(t, MatchCard(&story, f, SprintAll))
}

func TestMatchCard_SprintSet_RequiresSprint(t *testing.T) {
	// The sprint set filter excludes backlog cards even when the set would
	// otherwise not constrain them.
	in := testutil.NewTestCard("a", testutil.WithSprint("Sprint 1"))
	backlog := testutil.NewTestCard("b")
	f := Filters{Sprints: []string{"Sprint 1"}}

	assert.True(t, MatchCard(&in, f, SprintAll))
	assert.False(t, MatchCard(&backlog, f, SprintAll))
}

func TestMatchCard_LabelIntersection(t *testing.T) {
	tagged := testutil.NewTestCard("a", testutil.WithLabels("frontend", "urgente"))
	other := testutil.NewTestCard("b", testutil.WithLabels("infra"))
	none := testutil.NewTestCard("c")
	f := Filters{Labels: []string{"urgente", "db"}}

	assert.True(t, MatchCard(&tagged, f, SprintAll))
	assert.False(t, MatchCard(&other, f, SprintAll))
	assert.False(t, MatchCard(&none, f, SprintAll))
}

func TestMatchCard_SearchText(t *testing.T) {
	card := testutil.NewTestCard("Tela de Login",
		testutil.WithDescription("Implementar autenticação via OAuth"),
		testutil.WithLabels("Frontend"))

	cases := []struct {
		text  string
		match bool
	}{
		{"login", true},
		{"LOGIN", true},
		{"oauth", true},
		{"frontend", true},
		{"pagamento", false},
	}
	for _, tc := range cases {
		f := Filters{SearchText: tc.text}
		assert.Equal(t, tc.match, MatchCard(&card, f, SprintAll), "text=%q", tc.text)
	}
}

func TestMatchCard_CriteriaCombineWithAnd(t *testing.T) {
	card := testutil.NewTestCard("a",
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithAssignee("Ana Souza"),
		testutil.WithSprint("Sprint 1"))

	match := Filters{
		Priorities: []domain.Priority{domain.PriorityHigh},
		Assignees:  []string{"Ana Souza"},
	}
	assert.True(t, MatchCard(&card, match, "Sprint 1"))

	// One failing criterion sinks the whole match.
	miss := match
	miss.Assignees = []string{"Bia Rocha"}
	assert.False(t, MatchCard(&card, miss, "Sprint 1"))
}

func TestFiltersIsEmpty(t *testing.T) {
	assert.True(t, Filters{}.IsEmpty())
	assert.False(t, Filters{SearchText: "x"}.IsEmpty())
	assert.False(t, Filters{Labels: []string{"a"}}.IsEmpty())
}
