package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelcosta/taskboard/internal/capacity"
	"github.com/rafaelcosta/taskboard/internal/domain"
)

func newCapacityCmd() *cobra.Command {
	var (
		weeks    int
		holidays int
		team     int
		absent   int
	)
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Calcula a capacidade de uma sprint hipotética",
		RunE: func(cmd *cobra.Command, args []string) error {
			perDev := capacity.StoryPointsByWeeks(weeks, holidays)
			members := make([]string, team)
			absences := make([]domain.AbsentMember, absent)
			for i := range absences {
				absences[i].Type = domain.AbsenceTotal
			}
			total := capacity.SprintCapacity(members, perDev, absences)
			fmt.Fprintf(cmd.OutOrStdout(),
				"%d semana(s), %d feriado(s): %d pts/dev\n%d membro(s), %d ausência(s) total(is): capacidade %d\n",
				weeks, holidays, perDev, team, absent, total)
			return nil
		},
	}
	cmd.Flags().IntVar(&weeks, "weeks", 2, "duração em semanas")
	cmd.Flags().IntVar(&holidays, "holidays", 0, "feriados no período")
	cmd.Flags().IntVar(&team, "team", 4, "tamanho da equipe")
	cmd.Flags().IntVar(&absent, "absent", 0, "membros totalmente ausentes")
	return cmd
}
