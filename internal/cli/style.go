package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"scorebuddies/internal/game"
)

var (
	primary = lipgloss.Color("#4F46E5")
	gold    = lipgloss.Color("#FACC15")
	silver  = lipgloss.Color("#9CA3AF")
	bronze  = lipgloss.Color("#C2410C")
	muted   = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginTop(1)
	mutedStyle  = lipgloss.NewStyle().Italic(true).Foreground(muted)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#713F12")).Background(gold).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers(headers...)
}

func plainStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func playersTable(players []game.Player) string {
	t := newTable("Player", "Total", "Rank").StyleFunc(plainStyle)
	for _, p := range players {
		t.Row(p.Name, strconv.Itoa(p.TotalScore), strconv.Itoa(p.Rank))
	}
	return t.String()
}

func boardTable(ranked []game.Player) string {
	t := newTable("#", "Player", "Total")
	for _, p := range ranked {
		t.Row(strconv.Itoa(p.Rank), p.Name, strconv.Itoa(p.TotalScore))
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		switch ranked[row].Rank {
		case 1:
			return cellStyle.Foreground(gold).Bold(true)
		case 2:
			return cellStyle.Foreground(silver)
		case 3:
			return cellStyle.Foreground(bronze)
		}
		return cellStyle
	}).String()
}

func roundTable(players []game.Player, round game.Round) string {
	t := newTable("Player", "Score").StyleFunc(plainStyle)
	for _, p := range players {
		t.Row(p.Name, strconv.Itoa(round.ScoreFor(p.ID)))
	}
	return t.String()
}

// historyTable lays rounds out one per row with a column per player, in
// registration order.
func historyTable(players []game.Player, rounds []game.Round) string {
	headers := make([]string, 0, len(players)+1)
	headers = append(headers, "Round")
	for _, p := range players {
		headers = append(headers, p.Name)
	}
	t := newTable(headers...).StyleFunc(plainStyle)
	for _, r := range rounds {
		row := make([]string, 0, len(players)+1)
		row = append(row, strconv.Itoa(r.Number))
		for _, p := range players {
			row = append(row, strconv.Itoa(r.ScoreFor(p.ID)))
		}
		t.Row(row...)
	}
	return t.String()
}
