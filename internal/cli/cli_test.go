package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"scorebuddies/internal/game"
	"scorebuddies/internal/kv"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	next := 0
	state := game.New(context.Background(), kv.NewMemory(), game.WithIDGenerator(func() string {
		next++
		return fmt.Sprintf("p%d", next)
	}))
	return &App{State: state}
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPlayersAdd(t *testing.T) {
	app := newTestApp(t)

	out, err := run(t, app, "players", "add", "Alice", " Bob ")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Alice")
	assert.Contains(t, out, "Added Bob")
	require.Len(t, app.State.Players(), 2)

	_, err = run(t, app, "players", "add", "alice")
	assert.ErrorIs(t, err, game.ErrDuplicateName)

	_, err = run(t, app, "players", "add", "  ")
	assert.ErrorIs(t, err, game.ErrNameRequired)
}

func TestPlayersList(t *testing.T) {
	app := newTestApp(t)

	out, err := run(t, app, "players", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No players added yet")

	_, err = run(t, app, "players", "add", "Zed", "Amy")
	require.NoError(t, err)
	_, err = run(t, app, "rounds", "add", "Zed=10", "Amy=2")
	require.NoError(t, err)

	out, err = run(t, app, "players", "list")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Amy")), bytes.Index([]byte(out), []byte("Zed")))

	out, err = run(t, app, "players", "list", "--sort", "rank")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Zed")), bytes.Index([]byte(out), []byte("Amy")))

	_, err = run(t, app, "players", "list", "--sort", "height")
	assert.Error(t, err)
}

func TestRoundsLifecycle(t *testing.T) {
	app := newTestApp(t)

	_, err := run(t, app, "rounds", "add", "Alice=3")
	assert.ErrorIs(t, err, errNoPlayers)

	_, err = run(t, app, "players", "add", "Alice", "Bob")
	require.NoError(t, err)

	out, err := run(t, app, "rounds", "add", "alice=10", "p2=5")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded round 1")

	out, err = run(t, app, "rounds", "add", "Bob=7")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded round 2")
	r2, ok := app.State.RoundByNumber(2)
	require.True(t, ok)
	assert.Equal(t, 0, r2.ScoreFor("p1"), "players left out score 0")

	_, err = run(t, app, "rounds", "edit", "1", "Bob=1")
	require.NoError(t, err)
	r1, _ := app.State.RoundByNumber(1)
	assert.Equal(t, 10, r1.ScoreFor("p1"), "untouched scores keep their value")
	assert.Equal(t, 1, r1.ScoreFor("p2"))

	out, err = run(t, app, "rounds", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Round 1")
	assert.Contains(t, out, "10")

	out, err = run(t, app, "rounds", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted round 1")
	require.Equal(t, 1, app.State.TotalRounds())
	r1, _ = app.State.RoundByNumber(1)
	assert.Equal(t, 7, r1.ScoreFor("p2"), "later rounds are renumbered")

	_, err = run(t, app, "rounds", "delete", "9")
	assert.Error(t, err)
	_, err = run(t, app, "rounds", "edit", "9", "Bob=1")
	assert.Error(t, err)
	_, err = run(t, app, "rounds", "show", "x")
	assert.Error(t, err)
}

func TestRoundsAdd_BadArgs(t *testing.T) {
	app := newTestApp(t)
	_, err := run(t, app, "players", "add", "Alice")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing separator", args: []string{"Alice"}},
		{name: "unknown player", args: []string{"Carol=3"}},
		{name: "not a number", args: []string{"Alice=three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, app, append([]string{"rounds", "add"}, tt.args...)...)
			assert.Error(t, err)
			assert.Zero(t, app.State.TotalRounds())
		})
	}
}

func TestBoardAndWinners(t *testing.T) {
	app := newTestApp(t)
	_, err := run(t, app, "players", "add", "Alice", "Bob")
	require.NoError(t, err)

	out, err := run(t, app, "winners")
	require.NoError(t, err)
	assert.Contains(t, out, "No rounds played yet")

	_, err = run(t, app, "rounds", "add", "Alice=4", "Bob=4")
	require.NoError(t, err)
	out, err = run(t, app, "winners")
	require.NoError(t, err)
	assert.Contains(t, out, "Tied Leaders: Alice, Bob (4 points)")

	_, err = run(t, app, "rounds", "add", "Bob=2")
	require.NoError(t, err)
	out, err = run(t, app, "board")
	require.NoError(t, err)
	assert.Contains(t, out, "Leaderboard")
	assert.Contains(t, out, "Round History")
	assert.Contains(t, out, "Current Leader: Bob (6 points)")
}

func TestReset(t *testing.T) {
	app := newTestApp(t)
	_, err := run(t, app, "players", "add", "Alice")
	require.NoError(t, err)

	_, err = run(t, app, "reset")
	assert.ErrorIs(t, err, errResetUnconfirmed)
	assert.Len(t, app.State.Players(), 1)

	_, err = run(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Empty(t, app.State.Players())
}

func TestReset_LogsWhatWasCleared(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := newTestApp(t)
	app.Logger = zap.New(core)
	_, err := run(t, app, "players", "add", "Alice", "Bob")
	require.NoError(t, err)
	_, err = run(t, app, "rounds", "add", "Alice=1")
	require.NoError(t, err)

	_, err = run(t, app, "reset", "--yes")
	require.NoError(t, err)

	entries := logs.FilterMessage("game reset").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 2, fields["players"])
	assert.EqualValues(t, 1, fields["rounds"])
}

func TestExport(t *testing.T) {
	app := newTestApp(t)
	_, err := run(t, app, "players", "add", "Alice")
	require.NoError(t, err)
	_, err = run(t, app, "rounds", "add", "Alice=9")
	require.NoError(t, err)

	out, err := run(t, app, "export")
	require.NoError(t, err)
	snap, err := game.DecodeSnapshot(out)
	require.NoError(t, err)
	assert.Equal(t, "current-game", snap.ID)
	assert.Equal(t, 9, snap.Players[0].TotalScore)

	out, err = run(t, app, "export", "--format", "yaml")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Current Game", doc["name"])
	assert.Equal(t, 2, doc["currentRound"])

	_, err = run(t, app, "export", "--format", "xml")
	assert.Error(t, err)
}
