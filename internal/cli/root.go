// Package cli is the terminal front end for a scorekeeping session. It shares
// the persisted game with the web server, so a table can score from either.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scorebuddies/internal/game"
)

// App carries what every command needs.
type App struct {
	State  *game.State
	Logger *zap.Logger
}

// NewRootCommand builds the scorebuddies command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	if app.Logger == nil {
		app.Logger = zap.NewNop()
	}
	root := &cobra.Command{
		Use:           "scorebuddies",
		Short:         "Keep score for a tabletop game from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newPlayersCommand(app),
		newRoundsCommand(app),
		newBoardCommand(app),
		newWinnersCommand(app),
		newResetCommand(app),
		newExportCommand(app),
	)
	return root
}

// parseScoreArgs turns NAME=SCORE pairs into a score map keyed by player id.
func parseScoreArgs(players []game.Player, args []string) (map[string]int, error) {
	scores := make(map[string]int, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("expected NAME=SCORE, got %q", arg)
		}
		p, ok := game.FindPlayer(players, arg[:i])
		if !ok {
			return nil, fmt.Errorf("unknown player %q", arg[:i])
		}
		raw := strings.TrimSpace(arg[i+1:])
		if raw == "" {
			scores[p.ID] = 0
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("score for %s must be a whole number", p.Name)
		}
		scores[p.ID] = n
	}
	return scores, nil
}

func parseRoundArg(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid round number %q", raw)
	}
	return n, nil
}
