package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"scorebuddies/internal/game"
	"scorebuddies/internal/viewmodel"
)

const pageTitle = "ScoreBuddies"

func buildHomePage(v game.View, tab viewmodel.Tab, shareURL string) viewmodel.HomePage {
	hasPlayers := len(v.Players) > 0
	if !hasPlayers {
		tab = viewmodel.TabPlayers
	}
	return viewmodel.HomePage{
		Title:      pageTitle,
		Tab:        tab,
		ShareURL:   shareURL,
		HasPlayers: hasPlayers,
		Players:    buildPlayersTab(v),
		Score:      buildScoreTab(v),
		Board:      buildBoardTab(v),
		Banner:     buildBanner(v),
	}
}

func buildPlayersTab(v game.View) viewmodel.PlayersTab {
	rows := make([]viewmodel.PlayerRow, 0, len(v.AlphabeticPlayers))
	for _, p := range v.AlphabeticPlayers {
		rows = append(rows, viewmodel.PlayerRow{ID: p.ID, Name: p.Name, Total: p.TotalScore})
	}
	return viewmodel.PlayersTab{Players: rows, MaxName: game.MaxNameLength}
}

func buildScoreTab(v game.View) viewmodel.ScoreTab {
	data := viewmodel.ScoreTab{
		HasPlayers: len(v.Players) > 0,
		Selector:   buildSelector(v),
	}

	editing, isEditing := v.RoundByNumber(v.EditingRound)
	viewing, isViewing := v.RoundByNumber(v.ViewingRound)
	var round game.Round
	switch {
	case v.IsEditing() && isEditing:
		data.Mode = viewmodel.ScoreModeEdit
		round = editing
		data.RoundNumber = editing.Number
		data.Heading = fmt.Sprintf("Edit Round %d", editing.Number)
	case isViewing:
		data.Mode = viewmodel.ScoreModeView
		round = viewing
		data.RoundNumber = viewing.Number
		data.Heading = fmt.Sprintf("Round %d", viewing.Number)
	default:
		data.Mode = viewmodel.ScoreModeAdd
		data.RoundNumber = v.TotalRounds + 1
		data.Heading = fmt.Sprintf("Round %d", data.RoundNumber)
	}

	data.Inputs = make([]viewmodel.ScoreInput, 0, len(v.Players))
	for _, p := range v.Players {
		in := viewmodel.ScoreInput{PlayerID: p.ID, Name: p.Name}
		if data.Mode != viewmodel.ScoreModeAdd {
			in.Score = round.ScoreFor(p.ID)
			in.Value = strconv.Itoa(in.Score)
		}
		data.Inputs = append(data.Inputs, in)
	}
	return data
}

func buildSelector(v game.View) viewmodel.RoundSelector {
	last := v.TotalRounds + 1
	viewing := clampRound(v.ViewingRound, last)
	return viewmodel.RoundSelector{
		Visible:      len(v.Players) > 0 && v.TotalRounds > 0,
		ViewingRound: viewing,
		LastRound:    last,
		PrevRound:    viewing - 1,
		NextRound:    viewing + 1,
		HasPrev:      viewing > 1,
		HasNext:      viewing < last,
	}
}

func buildBoardTab(v game.View) viewmodel.BoardTab {
	data := viewmodel.BoardTab{
		Players: make([]viewmodel.BoardRow, 0, len(v.RankedPlayers)),
		History: make([]viewmodel.HistoryRow, 0, len(v.Rounds)),
	}
	for _, p := range v.RankedPlayers {
		data.Players = append(data.Players, viewmodel.BoardRow{
			ID:    p.ID,
			Name:  p.Name,
			Total: p.TotalScore,
			Rank:  p.Rank,
			Medal: viewmodel.Medal(p.Rank),
		})
	}
	for _, r := range v.Rounds {
		row := viewmodel.HistoryRow{Number: r.Number, Cells: make([]viewmodel.HistoryCell, 0, len(v.Players))}
		for _, p := range v.Players {
			row.Cells = append(row.Cells, viewmodel.HistoryCell{Name: p.Name, Score: r.ScoreFor(p.ID)})
		}
		data.History = append(data.History, row)
	}
	return data
}

func buildBanner(v game.View) viewmodel.WinnerBanner {
	if len(v.Winners) == 0 || v.TotalRounds == 0 {
		return viewmodel.WinnerBanner{}
	}
	names := make([]string, 0, len(v.Winners))
	for _, w := range v.Winners {
		names = append(names, w.Name)
	}
	return viewmodel.WinnerBanner{Visible: true, Text: viewmodel.LeaderText(names, v.Winners[0].TotalScore)}
}

func clampRound(n, last int) int {
	if n < 1 {
		return 1
	}
	if n > last {
		return last
	}
	return n
}

func buildShareURL(r *http.Request, baseURL string) string {
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		return strings.TrimRight(baseURL, "/") + "/"
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
