// Package seed loads the demo dataset the board starts with, standing in for
// a real backend.
package seed

import (
	"time"

	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/store"
)

// Team is the demo team roster.
var Team = []domain.TeamMember{
	{Name: "Maria Santos", Role: domain.RoleScrumMaster, Email: "maria.santos@example.com", IsActive: true},
	{Name: "João Oliveira", Role: domain.RoleDeveloper, Email: "joao.oliveira@example.com", IsActive: true},
	{Name: "Ana Souza", Role: domain.RoleDeveloper, Email: "ana.souza@example.com", IsActive: true},
	{Name: "Carlos Dias", Role: domain.RoleTester, Email: "carlos.dias@example.com", IsActive: true},
	{Name: "Pedro Lima", Role: domain.RoleProductOwner, Email: "pedro.lima@example.com", IsActive: true},
}

// CurrentUser returns the simulated acting user for the demo session.
func CurrentUser() domain.TeamMember {
	return Team[0]
}

// Apply fills the store with the demo sprint and cards.
func Apply(s *store.Store) error {
	start := time.Now().UTC().AddDate(0, 0, -7)
	sprint := s.CreateSprint(store.CreateSprintInput{
		Name:      "Sprint 1",
		Goal:      "Entregar o fluxo de autenticação",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
		Holidays:  1,
		TeamMembers: []string{
			"João Oliveira", "Ana Souza", "Carlos Dias",
		},
		AbsentMembers: []domain.AbsentMember{
			{Name: "Carlos Dias", Type: domain.AbsencePartial},
		},
	})

	cards := []store.CreateCardInput{
		{
			Title:       "Tela de login",
			Description: "Formulário de login com validação e mensagens de erro",
			IssueType:   domain.IssueStory,
			Priority:    domain.PriorityHigh,
			Assignee:    "João Oliveira",
			Reporter:    "Pedro Lima",
			Status:      domain.StatusEmExecucao,
			Sprint:      sprint.Name,
			StoryPoints: 5,
			Labels:      []string{"frontend", "auth"},
		},
		{
			Title:       "Integração OAuth",
			Description: "Login social via Google e GitHub",
			IssueType:   domain.IssueStory,
			Priority:    domain.PriorityMedium,
			Assignee:    "Ana Souza",
			Reporter:    "Pedro Lima",
			Status:      domain.StatusPlanejado,
			Sprint:      sprint.Name,
			StoryPoints: 8,
			Labels:      []string{"backend", "auth"},
		},
		{
			Title:       "Sessão expira sem aviso",
			Description: "Usuário perde dados do formulário quando o token expira",
			IssueType:   domain.IssueBug,
			Priority:    domain.PriorityCritical,
			Assignee:    "Ana Souza",
			Reporter:    "Carlos Dias",
			Status:      domain.StatusEmTeste,
			Sprint:      sprint.Name,
			StoryPoints: 3,
			Labels:      []string{"bug", "auth"},
		},
		{
			Title:       "Refatorar módulo de pagamentos",
			Description: "Épico guarda-chuva da migração do gateway",
			IssueType:   domain.IssueEpic,
			Priority:    domain.PriorityMedium,
			Assignee:    "Pedro Lima",
			Reporter:    "Pedro Lima",
			Status:      domain.StatusBacklog,
			Labels:      []string{"pagamentos"},
		},
		{
			Title:       "Página de recuperação de senha",
			Description: "Fluxo de e-mail com token de uso único",
			IssueType:   domain.IssueStory,
			Priority:    domain.PriorityLow,
			Assignee:    "João Oliveira",
			Reporter:    "Pedro Lima",
			Status:      domain.StatusBacklog,
			StoryPoints: 3,
			Labels:      []string{"frontend", "auth"},
		},
		{
			Title:       "Auditoria de acessibilidade",
			Description: "Checar contraste e navegação por teclado nas telas novas",
			IssueType:   domain.IssueTask,
			Priority:    domain.PriorityMedium,
			Assignee:    "Carlos Dias",
			Reporter:    "Maria Santos",
			Status:      domain.StatusFinalizado,
			Sprint:      sprint.Name,
			StoryPoints: 2,
			Labels:      []string{"qa"},
		},
	}
	for _, in := range cards {
		s.CreateCard(in)
	}

	return s.StartSprint(sprint.ID)
}
