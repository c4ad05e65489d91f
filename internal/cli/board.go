package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scorebuddies/internal/game"
	"scorebuddies/internal/viewmodel"
)

var errResetUnconfirmed = errors.New("reset discards every player and round; pass --yes to confirm")

func newBoardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the leaderboard and round history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ranked := app.State.RankedPlayers()
			if len(ranked) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No players added yet"))
				return nil
			}
			fmt.Fprintln(out, titleStyle.Render("Leaderboard"))
			fmt.Fprintln(out, boardTable(ranked))
			rounds := app.State.Rounds()
			if len(rounds) == 0 {
				return nil
			}
			fmt.Fprintln(out, titleStyle.Render("Round History"))
			fmt.Fprintln(out, historyTable(app.State.Players(), rounds))
			fmt.Fprintln(out, bannerStyle.Render(leaderLine(app.State.Winners())))
			return nil
		},
	}
}

func newWinnersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "winners",
		Short: "Print the current leader or tied leaders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.State.TotalRounds() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No rounds played yet"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), leaderLine(app.State.Winners()))
			return nil
		},
	}
}

func newResetCommand(app *App) *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errResetUnconfirmed
			}
			players, rounds := len(app.State.Players()), app.State.TotalRounds()
			app.State.Reset(cmd.Context())
			app.Logger.Info("game reset", zap.Int("players", players), zap.Int("rounds", rounds))
			fmt.Fprintln(cmd.OutOrStdout(), "Started a new game")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the reset")
	return cmd
}

func leaderLine(winners []game.Player) string {
	if len(winners) == 0 {
		return ""
	}
	names := make([]string, 0, len(winners))
	for _, w := range winners {
		names = append(names, w.Name)
	}
	return viewmodel.LeaderText(names, winners[0].TotalScore)
}
