package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/testutil"
)

func TestNextCardNumber_Empty(t *testing.T) {
	assert.Equal(t, 1, NextCardNumber(nil))
	assert.Equal(t, 1, NextCardNumber([]domain.Card{}))
}

func TestNextCardNumber_AlwaysAboveExisting(t *testing.T) {
	cards := []domain.Card{
		testutil.NewTestCard("a", testutil.WithCardNumber(3)),
		testutil.NewTestCard("b", testutil.WithCardNumber(7)),
		testutil.NewTestCard("c", testutil.WithCardNumber(5)),
	}
	next := NextCardNumber(cards)
	assert.Equal(t, 8, next)
	for _, c := range cards {
		assert.Greater(t, next, c.CardNumber)
	}
}

func TestNextCardNumber_SurvivesDeletions(t *testing.T) {
	// Deleting the highest-numbered card still never reuses its number while
	// any higher number remains; deleting a middle card leaves a gap forever.
	cards := []domain.Card{
		testutil.NewTestCard("a", testutil.WithCardNumber(1)),
		testutil.NewTestCard("b", testutil.WithCardNumber(2)),
		testutil.NewTestCard("c", testutil.WithCardNumber(3)),
	}
	remaining := []domain.Card{cards[0], cards[2]} // card 2 deleted
	assert.Equal(t, 4, NextCardNumber(remaining))
}

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		name  string
		items []domain.ChecklistItem
		want  int
	}{
		{"empty", nil, 0},
		{"none done", testutil.Checklist(false, false), 0},
		{"half", testutil.Checklist(true, false), 50},
		{"third rounds", testutil.Checklist(true, false, false), 33},
		{"two thirds rounds", testutil.Checklist(true, true, false), 67},
		{"all done", testutil.Checklist(true, true, true), 100},
		{"single done", testutil.Checklist(true), 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CompletionPercentage(tc.items)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestGroupByStatus_Partitions(t *testing.T) {
	cols := DefaultColumns()
	cards := []domain.Card{
		testutil.NewTestCard("a", testutil.WithStatus(domain.StatusBacklog)),
		testutil.NewTestCard("b", testutil.WithStatus(domain.StatusEmExecucao)),
		testutil.NewTestCard("c", testutil.WithStatus(domain.StatusEmExecucao)),
		testutil.NewTestCard("d", testutil.WithStatus(domain.StatusFinalizado)),
	}
	out := GroupByStatus(cols, cards)

	require.Len(t, out, len(domain.AllStatuses))
	byStatus := make(map[domain.Status]int)
	for _, col := range out {
		byStatus[col.Status] = len(col.Cards)
	}
	assert.Equal(t, 1, byStatus[domain.StatusBacklog])
	assert.Equal(t, 2, byStatus[domain.StatusEmExecucao])
	assert.Equal(t, 1, byStatus[domain.StatusFinalizado])
	assert.Equal(t, 0, byStatus[domain.StatusEmTeste])
}

func TestGroupByStatus_DropsUnknownStatus(t *testing.T) {
	cols := DefaultColumns()
	stale := testutil.NewTestCard("stale")
	stale.Status = domain.Status("migrated-away")
	out := GroupByStatus(cols, []domain.Card{stale})

	total := 0
	for _, col := range out {
		total += len(col.Cards)
	}
	assert.Equal(t, 0, total)
}

func TestGroupByStatus_DoesNotMutateInput(t *testing.T) {
	cols := DefaultColumns()
	cards := []domain.Card{testutil.NewTestCard("a", testutil.WithStatus(domain.StatusBacklog))}
	_ = GroupByStatus(cols, cards)
	assert.Nil(t, cols[0].Cards, "input columns must stay empty")
}

func TestUniqueAssignees(t *testing.T) {
	cards := []domain.Card{
		testutil.NewTestCard("a", testutil.WithAssignee("Carlos Dias")),
		testutil.NewTestCard("b", testutil.WithAssignee("Ana Souza")),
		testutil.NewTestCard("c", testutil.WithAssignee("Carlos Dias")),
	}
	assert.Equal(t, []string{"Ana Souza", "Carlos Dias"}, UniqueAssignees(cards))
}

func TestUniqueSprints_SkipsBacklog(t *testing.T) {
	cards := []domain.Card{
		testutil.NewTestCard("a", testutil.WithSprint("Sprint 2")),
		testutil.NewTestCard("b"),
		testutil.NewTestCard("c", testutil.WithSprint("Sprint 1")),
		testutil.NewTestCard("d", testutil.WithSprint("Sprint 1")),
	}
	assert.Equal(t, []string{"Sprint 1", "Sprint 2"}, UniqueSprints(cards))
}

func TestUniqueLabels(t *testing.T) {
	cards := []domain.Card{
		testutil.NewTestCard("a", testutil.WithLabels("frontend", "urgente")),
		testutil.NewTestCard("b", testutil.WithLabels("urgente", "infra")),
		testutil.NewTestCard("c"),
	}
	assert.Equal(t, []string{"frontend", "infra", "urgente"}, UniqueLabels(cards))
}
