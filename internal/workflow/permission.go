// Package workflow decides whether a user may move a card between stages.
// Decisions are pure: the caller commits the status change (and the history
// entry) only after a permitted result.
package workflow

import (
	"fmt"
	"time"

	"github.com/rafaelcosta/taskboard/internal/domain"
)

// Decision is the outcome of a move check. Reason is user-facing and set
// whenever CanMove is false.
type Decision struct {
	CanMove bool
	Reason  string
}

// developerTransitions is the allow-list of single-step moves a developer may
// perform. Everything outside this table is rejected for developers.
var developerTransitions = map[domain.Status][]domain.Status{
	domain.StatusPlanejado:  {domain.StatusEmExecucao},
	domain.StatusEmExecucao: {domain.StatusEmEspera, domain.StatusEmTeste},
	domain.StatusEmEspera:   {domain.StatusEmExecucao},
	domain.StatusEmTeste:    {domain.StatusValidacaoTecnica},
}

// developerMovableTypes lists the issue types developers are allowed to move.
var developerMovableTypes = map[domain.IssueType]bool{
	domain.IssueStory: true,
	domain.IssueBug:   true,
	domain.IssueTask:  true,
}

const developerCycle = "Planejado → Em Execução → Em Espera → Em Execução → Em Teste → Aguardando Validação Técnica"

// CanMoveCard checks whether user may move card from one stage to another.
// Every role except developer is unrestricted. Developers may only move
// story, bug and task cards, and only along the allow-listed cycle.
func CanMoveCard(card *domain.Card, from, to domain.Status, user domain.TeamMember) Decision {
	if user.Role != domain.RoleDeveloper {
		return Decision{CanMove: true}
	}

	if !developerMovableTypes[card.IssueType] {
		return Decision{
			CanMove: false,
			Reason:  "Desenvolvedores podem mover apenas cartões do tipo História de Usuário, Bug e Task.",
		}
	}

	for _, allowed := range developerTransitions[from] {
		if allowed == to {
			return Decision{CanMove: true}
		}
	}

	return Decision{
		CanMove: false,
		Reason: fmt.Sprintf(
			"Desenvolvedores não podem mover cartões de %s para %s. Fluxo permitido: %s.",
			from.DisplayName(), to.DisplayName(), developerCycle,
		),
	}
}

// NewStatusChange builds the audit entry the caller appends after committing
// a permitted move.
func NewStatusChange(id string, from, to domain.Status, author string, now time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:     id,
		Action: domain.ActionStatusChange,
		Description: fmt.Sprintf("Status alterado de %s para %s",
			from.DisplayName(), to.DisplayName()),
		Author:    author,
		Timestamp: now,
		Field:     "status",
		OldValue:  string(from),
		NewValue:  string(to),
	}
}
