package components

import (
	"strconv"

	"github.com/a-h/templ"

	"scorebuddies/internal/viewmodel"
)

func roundPath(n int) string {
	return "/rounds/" + strconv.Itoa(n)
}

// RoundSelectorFragment renders previous/next navigation across rounds.
func RoundSelectorFragment(data viewmodel.RoundSelector) templ.Component {
	return component(func(h *html) {
		if !data.Visible {
			return
		}
		h.raw(`<nav class="round-selector">`)
		if data.HasPrev {
			h.raw(`<a class="prev" href="`)
			h.text(roundPath(data.PrevRound))
			h.raw(`">&lsaquo;</a>`)
		} else {
			h.raw(`<span class="prev disabled">&lsaquo;</span>`)
		}
		h.raw(`<div class="viewing"><small>Viewing Round</small><strong>`)
		h.num(data.ViewingRound)
		h.raw(` / `)
		h.num(data.LastRound)
		h.raw(`</strong></div>`)
		if data.HasNext {
			h.raw(`<a class="next" href="`)
			h.text(roundPath(data.NextRound))
			h.raw(`">&rsaquo;</a>`)
		} else {
			h.raw(`<span class="next disabled">&rsaquo;</span>`)
		}
		h.raw(`</nav>`)
	})
}

// ScoreFragment renders the round entry screen in add, view or edit mode.
func ScoreFragment(data viewmodel.ScoreTab) templ.Component {
	return component(func(h *html) {
		if !data.HasPlayers {
			h.raw(`<section class="panel"><p class="empty">Add players first.</p></section>`)
			return
		}
		h.render(RoundSelectorFragment(data.Selector))
		h.raw(`<section class="panel score-panel mode-`)
		h.text(string(data.Mode))
		h.raw(`"><header><h2>`)
		h.text(data.Heading)
		h.raw(`</h2>`)
		switch data.Mode {
		case viewmodel.ScoreModeEdit:
			h.raw(`<form method="post" action="`)
			h.text(roundPath(data.RoundNumber) + "/cancel")
			h.raw(`" class="inline"><button type="submit" class="secondary">Cancel</button></form>`)
		case viewmodel.ScoreModeView:
			h.raw(`<form method="post" action="`)
			h.text(roundPath(data.RoundNumber) + "/edit")
			h.raw(`" class="inline"><button type="submit" class="secondary">Edit</button></form>`)
			h.raw(`<form method="post" action="`)
			h.text(roundPath(data.RoundNumber) + "/delete")
			h.raw(`" class="inline confirm" data-confirm="Are you sure you want to delete Round `)
			h.num(data.RoundNumber)
			h.raw(`? This will recalculate all scores."><button type="submit" class="danger">Delete</button></form>`)
		}
		h.raw(`</header>`)

		action := "/rounds"
		if data.Mode == viewmodel.ScoreModeEdit {
			action = roundPath(data.RoundNumber)
		}
		h.raw(`<form method="post" class="scores" action="`)
		h.text(action)
		h.raw(`">`)
		for _, in := range data.Inputs {
			h.raw(`<label for="score-`)
			h.text(in.PlayerID)
			h.raw(`"><span>`)
			h.text(in.Name)
			h.raw(`</span>`)
			if data.Mode == viewmodel.ScoreModeView {
				h.raw(`<output>`)
				h.num(in.Score)
				h.raw(`</output>`)
			} else {
				h.raw(`<input type="number" inputmode="numeric" placeholder="0" id="score-`)
				h.text(in.PlayerID)
				h.raw(`" name="score-`)
				h.text(in.PlayerID)
				h.raw(`" value="`)
				h.text(in.Value)
				h.raw(`">`)
			}
			h.raw(`</label>`)
		}
		switch data.Mode {
		case viewmodel.ScoreModeAdd:
			h.raw(`<button type="submit" class="primary">Add Round</button>`)
		case viewmodel.ScoreModeEdit:
			h.raw(`<button type="submit" class="primary">Save Changes</button>`)
		}
		h.raw(`</form></section>`)
	})
}
