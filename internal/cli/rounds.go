package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoPlayers = errors.New("add players before scoring a round")

func newRoundsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "Record, correct and inspect rounds",
	}
	cmd.AddCommand(
		newRoundsAddCommand(app),
		newRoundsEditCommand(app),
		newRoundsDeleteCommand(app),
		newRoundsShowCommand(app),
		newRoundsListCommand(app),
	)
	return cmd
}

func newRoundsAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME=SCORE...",
		Short: "Record a round; players left out score 0",
		RunE: func(cmd *cobra.Command, args []string) error {
			players := app.State.Players()
			if len(players) == 0 {
				return errNoPlayers
			}
			scores, err := parseScoreArgs(players, args)
			if err != nil {
				return err
			}
			round := app.State.AddRound(cmd.Context(), scores)
			app.Logger.Debug("round added", zap.Int("round", round.Number))
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded round %d\n", round.Number)
			return nil
		},
	}
}

func newRoundsEditCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit N NAME=SCORE...",
		Short: "Change scores in an existing round",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseRoundArg(args[0])
			if err != nil {
				return err
			}
			round, ok := app.State.RoundByNumber(n)
			if !ok {
				return fmt.Errorf("round %d does not exist", n)
			}
			players := app.State.Players()
			changes, err := parseScoreArgs(players, args[1:])
			if err != nil {
				return err
			}
			scores := make(map[string]int, len(players))
			for _, p := range players {
				scores[p.ID] = round.ScoreFor(p.ID)
			}
			for id, score := range changes {
				scores[id] = score
			}
			if _, ok := app.State.UpdateRound(cmd.Context(), n, scores); !ok {
				return fmt.Errorf("round %d does not exist", n)
			}
			app.Logger.Debug("round updated", zap.Int("round", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated round %d\n", n)
			return nil
		},
	}
}

func newRoundsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete N",
		Short: "Delete a round and renumber the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseRoundArg(args[0])
			if err != nil {
				return err
			}
			if !app.State.DeleteRound(cmd.Context(), n) {
				return fmt.Errorf("round %d does not exist", n)
			}
			app.Logger.Debug("round deleted", zap.Int("round", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted round %d\n", n)
			return nil
		},
	}
}

func newRoundsShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show N",
		Short: "Show each player's score in one round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseRoundArg(args[0])
			if err != nil {
				return err
			}
			round, ok := app.State.RoundByNumber(n)
			if !ok {
				return fmt.Errorf("round %d does not exist", n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("Round %d", round.Number)))
			fmt.Fprintln(cmd.OutOrStdout(), roundTable(app.State.Players(), round))
			return nil
		},
	}
}

func newRoundsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the round history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rounds := app.State.Rounds()
			if len(rounds) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No rounds played yet"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), historyTable(app.State.Players(), rounds))
			return nil
		},
	}
}
