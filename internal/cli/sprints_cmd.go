package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/store"
)

func newSprintsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprints",
		Short: "Lista e gerencia sprints",
	}
	cmd.AddCommand(
		newSprintsListCmd(app),
		newSprintsAddCmd(app),
		newSprintsStartCmd(app),
		newSprintsAssignCmd(app),
		newSprintsDeleteCmd(app),
	)
	return cmd
}

func newSprintsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista sprints com capacidade e alocação",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sp := range app.Store.Sprints() {
				allocated := 0
				for _, c := range app.Store.SprintCards(sp.Name) {
					allocated += c.StoryPoints
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-10s %2d membros  %2d pts/dev  %d/%d pontos\n",
					sp.Name, sp.Status, len(sp.TeamMembers),
					sp.StoryPointsPerDeveloper, allocated, sp.Capacity)
			}
			return nil
		},
	}
}

func newSprintsAddCmd(app *App) *cobra.Command {
	var (
		name     string
		goal     string
		start    string
		weeks    int
		holidays int
		team     []string
		absent   []string
		partial  []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Cria uma sprint em planejamento",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate := time.Now().UTC()
			if start != "" {
				parsed, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("data inválida %q (use AAAA-MM-DD)", start)
				}
				startDate = parsed
			}
			var absences []domain.AbsentMember
			for _, n := range absent {
				absences = append(absences, domain.AbsentMember{Name: n, Type: domain.AbsenceTotal})
			}
			for _, n := range partial {
				absences = append(absences, domain.AbsentMember{Name: n, Type: domain.AbsencePartial})
			}
			sp := app.Store.CreateSprint(store.CreateSprintInput{
				Name:          name,
				Goal:          goal,
				StartDate:     startDate,
				EndDate:       startDate.AddDate(0, 0, weeks*7),
				Holidays:      holidays,
				TeamMembers:   team,
				AbsentMembers: absences,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Sprint %q criada: %d pts/dev, capacidade %d\n",
				sp.Name, sp.StoryPointsPerDeveloper, sp.Capacity)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nome da sprint")
	cmd.Flags().StringVar(&goal, "goal", "", "meta da sprint")
	cmd.Flags().StringVar(&start, "start", "", "data de início (AAAA-MM-DD)")
	cmd.Flags().IntVar(&weeks, "weeks", 2, "duração em semanas")
	cmd.Flags().IntVar(&holidays, "holidays", 0, "feriados no período")
	cmd.Flags().StringSliceVar(&team, "member", nil, "membro da equipe (repetível)")
	cmd.Flags().StringSliceVar(&absent, "absent", nil, "membro totalmente ausente (repetível)")
	cmd.Flags().StringSliceVar(&partial, "partial", nil, "membro parcialmente ausente (repetível)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSprintsStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <nome>",
		Short: "Ativa uma sprint (apenas uma pode estar ativa)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := findSprintByName(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.StartSprint(sp.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sprint %q ativa\n", sp.Name)
			return nil
		},
	}
}

func newSprintsAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <nome> <número>...",
		Short: "Move cartões do backlog para a sprint, validando a capacidade",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := findSprintByName(app, args[0])
			if err != nil {
				return err
			}
			var cardIDs []string
			for _, arg := range args[1:] {
				number, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("número de cartão inválido: %q", arg)
				}
				found := false
				for _, c := range app.Store.Cards() {
					if c.CardNumber == number {
						cardIDs = append(cardIDs, c.ID)
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("cartão #%d não encontrado", number)
				}
			}
			if err := app.Store.AssignToSprint(sp.ID, cardIDs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cartão(ões) movido(s) para %q\n", len(cardIDs), sp.Name)
			return nil
		},
	}
}

func newSprintsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <nome>",
		Short: "Remove uma sprint, devolvendo seus cartões ao backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := findSprintByName(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.DeleteSprint(sp.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sprint %q removida\n", sp.Name)
			return nil
		},
	}
}

func findSprintByName(app *App, name string) (domain.Sprint, error) {
	for _, sp := range app.Store.Sprints() {
		if sp.Name == name {
			return sp, nil
		}
	}
	return domain.Sprint{}, fmt.Errorf("sprint %q não encontrada", name)
}
