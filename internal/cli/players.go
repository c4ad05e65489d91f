package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scorebuddies/internal/game"
)

func newPlayersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Register and list players",
	}
	cmd.AddCommand(newPlayersAddCommand(app), newPlayersListCommand(app))
	return cmd
}

func newPlayersAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Register one or more players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				p, err := app.State.AddNamedPlayer(cmd.Context(), raw)
				if err != nil {
					return fmt.Errorf("add %q: %w", raw, err)
				}
				app.Logger.Debug("player added", zap.String("player", p.ID))
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", p.Name)
			}
			return nil
		},
	}
}

func newPlayersListCommand(app *App) *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players with their totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var players []game.Player
			switch order {
			case "alpha":
				players = app.State.AlphabeticPlayers()
			case "rank":
				players = app.State.RankedPlayers()
			case "entry":
				players = app.State.Players()
			default:
				return fmt.Errorf("unknown sort %q (want alpha, rank or entry)", order)
			}
			if len(players) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No players added yet"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), playersTable(players))
			return nil
		},
	}
	cmd.Flags().StringVar(&order, "sort", "alpha", "ordering: alpha, rank or entry")
	return cmd
}
