package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/testutil"
)

func TestBoardModel_SetCardsPartitions(t *testing.T) {
	b := NewBoardModel(DefaultStyles())
	b.SetCards([]domain.Card{
		testutil.NewTestCard("a", testutil.WithStatus(domain.StatusBacklog)),
		testutil.NewTestCard("b", testutil.WithStatus(domain.StatusEmExecucao)),
		testutil.NewTestCard("c", testutil.WithStatus(domain.StatusEmExecucao)),
	})
	assert.Equal(t, 3, b.TotalCount())
}

func TestBoardModel_SelectionClampedAfterRefresh(t *testing.T) {
	b := NewBoardModel(DefaultStyles())
	cards := []domain.Card{
		testutil.NewTestCard("a", testutil.WithStatus(domain.StatusBacklog)),
		testutil.NewTestCard("b", testutil.WithStatus(domain.StatusBacklog)),
	}
	b.SetCards(cards)
	b.MoveDown()
	require.NotNil(t, b.SelectedCard())
	assert.Equal(t, "b", b.SelectedCard().Title)

	// Shrinking the column pulls the selection back in range.
	b.SetCards(cards[:1])
	require.NotNil(t, b.SelectedCard())
	assert.Equal(t, "a", b.SelectedCard().Title)
}

func TestBoardModel_NavigationBounds(t *testing.T) {
	b := NewBoardModel(DefaultStyles())
	b.SetCards(nil)

	b.MoveLeft()
	assert.Equal(t, 0, b.focusedCol)
	for i := 0; i < 50; i++ {
		b.MoveRight()
	}
	assert.Equal(t, len(domain.AllStatuses)-1, b.focusedCol)

	b.MoveUp()
	b.MoveDown()
	assert.Nil(t, b.SelectedCard(), "empty column has no selection")
}

func TestAdjacentStatus(t *testing.T) {
	next, ok := adjacentStatus(domain.StatusBacklog, +1)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPlanejado, next)

	prev, ok := adjacentStatus(domain.StatusPlanejado, -1)
	require.True(t, ok)
	assert.Equal(t, domain.StatusBacklog, prev)

	_, ok = adjacentStatus(domain.StatusBacklog, -1)
	assert.False(t, ok, "no stage before backlog")
	_, ok = adjacentStatus(domain.StatusFinalizado, +1)
	assert.False(t, ok, "no stage after finalizado")
	_, ok = adjacentStatus(domain.Status("unknown"), +1)
	assert.False(t, ok)
}
