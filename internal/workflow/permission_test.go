package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelcosta/taskboard/internal/domain"
)

var (
	developer = domain.TeamMember{Name: "João", Role: domain.RoleDeveloper}
	testNow   = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
)

var allowedPairs = []struct {
	from, to domain.Status
}{
	{domain.StatusPlanejado, domain.StatusEmExecucao},
	{domain.StatusEmExecucao, domain.StatusEmEspera},
	{domain.StatusEmExecucao, domain.StatusEmTeste},
	{domain.StatusEmEspera, domain.StatusEmExecucao},
	{domain.StatusEmTeste, domain.StatusValidacaoTecnica},
}

func isAllowedPair(from, to domain.Status) bool {
	for _, p := range allowedPairs {
		if p.from == from && p.to == to {
			return true
		}
	}
	return false
}

func TestCanMoveCard_DeveloperAllowList(t *testing.T) {
	card := &domain.Card{IssueType: domain.IssueStory}
	for _, p := range allowedPairs {
		d := CanMoveCard(card, p.from, p.to, developer)
		assert.True(t, d.CanMove, "%s -> %s should be allowed", p.from, p.to)
		assert.Empty(t, d.Reason)
	}
}

func TestCanMoveCard_DeveloperExhaustiveRejections(t *testing.T) {
	// Every (from, to) combination outside the allow-list is rejected with a
	// non-empty reason.
	card := &domain.Card{IssueType: domain.IssueTask}
	for _, from := range domain.AllStatuses {
		for _, to := range domain.AllStatuses {
			d := CanMoveCard(card, from, to, developer)
			if isAllowedPair(from, to) {
				assert.True(t, d.CanMove, "%s -> %s", from, to)
			} else {
				assert.False(t, d.CanMove, "%s -> %s", from, to)
				assert.NotEmpty(t, d.Reason, "%s -> %s", from, to)
			}
		}
	}
}

func TestCanMoveCard_DeveloperEpicRejected(t *testing.T) {
	card := &domain.Card{IssueType: domain.IssueEpic, Status: domain.StatusPlanejado}
	d := CanMoveCard(card, domain.StatusPlanejado, domain.StatusEmExecucao, developer)
	assert.False(t, d.CanMove)
	assert.Contains(t, d.Reason, "História de Usuário, Bug e Task")
}

func TestCanMoveCard_DeveloperBugToValidation(t *testing.T) {
	card := &domain.Card{IssueType: domain.IssueBug}
	d := CanMoveCard(card, domain.StatusEmTeste, domain.StatusValidacaoTecnica, developer)
	assert.True(t, d.CanMove)
}

func TestCanMoveCard_DeveloperCannotFinalize(t *testing.T) {
	card := &domain.Card{IssueType: domain.IssueStory}
	d := CanMoveCard(card, domain.StatusEmExecucao, domain.StatusFinalizado, developer)
	require.False(t, d.CanMove)
	assert.Contains(t, d.Reason, "Em Execução")
	assert.Contains(t, d.Reason, "Finalizado")
	assert.Contains(t, d.Reason, "Fluxo permitido")
}

func TestCanMoveCard_RejectionNamesBothStages(t *testing.T) {
	card := &domain.Card{IssueType: domain.IssueTask}
	d := CanMoveCard(card, domain.StatusBacklog, domain.StatusEmTeste, developer)
	require.False(t, d.CanMove)
	assert.Contains(t, d.Reason, "Backlog")
	assert.Contains(t, d.Reason, "Em Teste")
	assert.Contains(t, d.Reason, "Aguardando Validação Técnica")
}

func TestCanMoveCard_NonDeveloperBypass(t *testing.T) {
	roles := []domain.Role{
		domain.RoleScrumMaster,
		domain.RoleProductOwner,
		domain.RoleTester,
		domain.RoleTechLead,
		domain.RoleDesigner,
	}
	// Any role other than developer may move anything anywhere, epics and
	// arbitrary jumps included.
	card := &domain.Card{IssueType: domain.IssueEpic}
	for _, role := range roles {
		user := domain.TeamMember{Name: "Maria", Role: role}
		for _, from := range domain.AllStatuses {
			for _, to := range domain.AllStatuses {
				d := CanMoveCard(card, from, to, user)
				assert.True(t, d.CanMove, "role=%s %s -> %s", role, from, to)
			}
		}
	}
}

func TestCanMoveCard_UnknownStatusRejectedForDeveloper(t *testing.T) {
	card := &domain.Card{IssueType: domain.IssueStory}
	d := CanMoveCard(card, domain.Status("corrupted"), domain.StatusEmExecucao, developer)
	assert.False(t, d.CanMove)
	assert.NotEmpty(t, d.Reason)
}

func TestCanMoveCard_Pure(t *testing.T) {
	card := &domain.Card{IssueType: domain.IssueStory, Status: domain.StatusEmExecucao}
	_ = CanMoveCard(card, domain.StatusEmExecucao, domain.StatusFinalizado, developer)
	assert.Equal(t, domain.StatusEmExecucao, card.Status, "rejected check must not touch the card")
}

func TestNewStatusChange(t *testing.T) {
	e := NewStatusChange("h1", domain.StatusPlanejado, domain.StatusEmExecucao, "João", testNow)
	assert.Equal(t, domain.ActionStatusChange, e.Action)
	assert.Equal(t, "status", e.Field)
	assert.Equal(t, "planejado", e.OldValue)
	assert.Equal(t, "em-execucao", e.NewValue)
	assert.Contains(t, e.Description, "Planejado")
	assert.Contains(t, e.Description, "Em Execução")
	assert.Equal(t, testNow, e.Timestamp)
}
