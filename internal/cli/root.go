package cli

import (
	"github.com/spf13/cobra"

	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/store"
)

// App holds what the commands need: the state container and the simulated
// acting user.
type App struct {
	Store       *store.Store
	CurrentUser domain.TeamMember

	// IsInteractive reports whether stdin is a terminal; the board view and
	// the card form require one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "taskboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Quadro ágil de cartões e sprints no terminal",
	}

	root.AddCommand(
		newBoardCmd(app),
		newCardsCmd(app),
		newSprintsCmd(app),
		newCapacityCmd(),
	)

	return root
}
