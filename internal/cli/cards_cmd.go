package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rafaelcosta/taskboard/internal/board"
	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/store"
)

func newCardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Lista e gerencia cartões",
	}
	cmd.AddCommand(
		newCardsListCmd(app),
		newCardsAddCmd(app),
		newCardsMoveCmd(app),
	)
	return cmd
}

func newCardsListCmd(app *App) *cobra.Command {
	var (
		sprintFilter string
		searchText   string
		assignees    []string
		labels       []string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista cartões, com filtros opcionais",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := board.Filters{
				Assignees:  assignees,
				Labels:     labels,
				SearchText: searchText,
			}
			selected := sprintFilter
			if selected == "" {
				selected = board.SprintAll
			}
			for _, c := range app.Store.Cards() {
				if !board.MatchCard(&c, filters, selected) {
					continue
				}
				points := "-"
				if c.HasEstimate() {
					points = strconv.Itoa(c.StoryPoints)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%-4d %-10s %-8s %3s pts  %-32s %s\n",
					c.CardNumber, c.IssueType, c.Priority, points, c.Title, c.Status.DisplayName())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sprintFilter, "sprint", "", "filtra por nome da sprint")
	cmd.Flags().StringVar(&searchText, "search", "", "busca em título, descrição e labels")
	cmd.Flags().StringSliceVar(&assignees, "assignee", nil, "filtra por responsável")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "filtra por label")
	return cmd
}

func newCardsAddCmd(app *App) *cobra.Command {
	var (
		title       string
		description string
		issueType   string
		priority    string
		assignee    string
		reporter    string
		points      int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Cria um cartão (formulário interativo quando sem flags)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := store.CreateCardInput{
				Title:       title,
				Description: description,
				IssueType:   domain.IssueType(issueType),
				Priority:    domain.Priority(priority),
				Assignee:    assignee,
				Reporter:    reporter,
				StoryPoints: points,
			}
			if title == "" {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("informe --title ou rode em um terminal interativo")
				}
				if err := runCardForm(&in); err != nil {
					return err
				}
			}
			card := app.Store.CreateCard(in)
			fmt.Fprintf(cmd.OutOrStdout(), "Cartão #%d criado: %s\n", card.CardNumber, card.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "título do cartão")
	cmd.Flags().StringVar(&description, "description", "", "descrição")
	cmd.Flags().StringVar(&issueType, "type", "task", "story, bug, task ou epic")
	cmd.Flags().StringVar(&priority, "priority", "medium", "low, medium, high ou critical")
	cmd.Flags().StringVar(&assignee, "assignee", "", "responsável")
	cmd.Flags().StringVar(&reporter, "reporter", "", "relator")
	cmd.Flags().IntVar(&points, "points", 0, "story points (0 = sem estimativa)")
	return cmd
}

func newCardsMoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <número> <status>",
		Short: "Move um cartão para outro estágio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("número de cartão inválido: %q", args[0])
			}
			target := domain.Status(args[1])
			if !target.IsValid() {
				return fmt.Errorf("status desconhecido: %q", args[1])
			}

			var cardID string
			for _, c := range app.Store.Cards() {
				if c.CardNumber == number {
					cardID = c.ID
					break
				}
			}
			if cardID == "" {
				return fmt.Errorf("cartão #%d não encontrado", number)
			}

			moved, err := app.Store.MoveCard(cardID, target, app.CurrentUser)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cartão #%d agora em %s\n",
				moved.CardNumber, moved.Status.DisplayName())
			return nil
		},
	}
	return cmd
}
