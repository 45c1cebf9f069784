package cli

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/store"
)

// runCardForm collects the card fields interactively. The form owns the
// required-field checks; the store takes whatever it is given.
func runCardForm(in *store.CreateCardInput) error {
	var (
		issueType = string(domain.IssueTask)
		priority  = string(domain.PriorityMedium)
		points    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Título").
				Value(&in.Title).
				Validate(requireNonEmpty("título")),
			huh.NewText().
				Title("Descrição").
				Value(&in.Description),
			huh.NewSelect[string]().
				Title("Tipo").
				Options(
					huh.NewOption("História de Usuário", string(domain.IssueStory)),
					huh.NewOption("Bug", string(domain.IssueBug)),
					huh.NewOption("Task", string(domain.IssueTask)),
					huh.NewOption("Épico", string(domain.IssueEpic)),
				).
				Value(&issueType),
			huh.NewSelect[string]().
				Title("Prioridade").
				Options(
					huh.NewOption("Baixa", string(domain.PriorityLow)),
					huh.NewOption("Média", string(domain.PriorityMedium)),
					huh.NewOption("Alta", string(domain.PriorityHigh)),
					huh.NewOption("Crítica", string(domain.PriorityCritical)),
				).
				Value(&priority),
			huh.NewInput().
				Title("Responsável").
				Value(&in.Assignee).
				Validate(requireNonEmpty("responsável")),
			huh.NewInput().
				Title("Relator").
				Value(&in.Reporter).
				Validate(requireNonEmpty("relator")),
			huh.NewInput().
				Title("Story points (vazio = sem estimativa)").
				Value(&points).
				Validate(validateOptionalPositiveInt),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	in.IssueType = domain.IssueType(issueType)
	in.Priority = domain.Priority(priority)
	if points != "" {
		in.StoryPoints, _ = strconv.Atoi(points)
	}
	return nil
}

func requireNonEmpty(field string) func(string) error {
	return func(v string) error {
		if v == "" {
			return &fieldError{field}
		}
		return nil
	}
}

func validateOptionalPositiveInt(v string) error {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return &fieldError{"número inteiro positivo"}
	}
	return nil
}

type fieldError struct {
	field string
}

func (e *fieldError) Error() string {
	return "informe " + e.field
}
