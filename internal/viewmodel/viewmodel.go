package viewmodel

// Tab identifies one of the three screens of the app.
type Tab string

const (
	TabPlayers Tab = "players"
	TabScore   Tab = "score"
	TabBoard   Tab = "board"
)

// ParseTab maps a query value to a tab, defaulting to players.
func ParseTab(value string) Tab {
	switch Tab(value) {
	case TabScore, TabBoard:
		return Tab(value)
	default:
		return TabPlayers
	}
}

// HomePage holds data for the main page template.
type HomePage struct {
	Title      string
	Tab        Tab
	ShareURL   string
	HasPlayers bool
	Players    PlayersTab
	Score      ScoreTab
	Board      BoardTab
	Banner     WinnerBanner
}

// PlayerRow is one entry of the alphabetical player list.
type PlayerRow struct {
	ID    string
	Name  string
	Total int
}

// PlayersTab holds data for the player registration screen.
type PlayersTab struct {
	Players []PlayerRow
	MaxName int
}

// ScoreMode is what the score screen is doing with the viewed round.
type ScoreMode string

const (
	ScoreModeAdd  ScoreMode = "add"
	ScoreModeView ScoreMode = "view"
	ScoreModeEdit ScoreMode = "edit"
)

// ScoreInput is one player's field on the score screen.
type ScoreInput struct {
	PlayerID string
	Name     string
	Value    string
	Score    int
}

// RoundSelector drives the previous/next round navigation.
type RoundSelector struct {
	Visible      bool
	ViewingRound int
	LastRound    int
	PrevRound    int
	NextRound    int
	HasPrev      bool
	HasNext      bool
}

// ScoreTab holds data for the round entry screen.
type ScoreTab struct {
	Mode        ScoreMode
	RoundNumber int
	Heading     string
	Inputs      []ScoreInput
	Selector    RoundSelector
	HasPlayers  bool
}

// BoardRow is one player on the leaderboard.
type BoardRow struct {
	ID    string
	Name  string
	Total int
	Rank  int
	Medal string
}

// HistoryCell is one player's score in a history row.
type HistoryCell struct {
	Name  string
	Score int
}

// HistoryRow is one round of the history grid.
type HistoryRow struct {
	Number int
	Cells  []HistoryCell
}

// BoardTab holds data for the leaderboard screen.
type BoardTab struct {
	Players []BoardRow
	History []HistoryRow
}

// WinnerBanner is the leader strip under the page content.
type WinnerBanner struct {
	Visible bool
	Text    string
}
