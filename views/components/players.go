package components

import (
	"github.com/a-h/templ"

	"scorebuddies/internal/viewmodel"
)

// PlayersFragment renders the add-player form and the alphabetical roster.
func PlayersFragment(data viewmodel.PlayersTab) templ.Component {
	return component(func(h *html) {
		h.raw(`<section class="panel" id="players-panel"><h2>Players</h2>`)
		h.raw(`<form method="post" action="/players" class="add-player">`)
		h.raw(`<input type="text" name="name" placeholder="Enter player name" required maxlength="`)
		h.num(data.MaxName)
		h.raw(`" autocomplete="off"><button type="submit">Add</button></form>`)
		if len(data.Players) == 0 {
			h.raw(`<p class="empty">Add players to start the game!</p></section>`)
			return
		}
		h.raw(`<ul class="roster">`)
		for _, p := range data.Players {
			h.raw(`<li data-player="`)
			h.text(p.ID)
			h.raw(`"><span class="name">`)
			h.text(p.Name)
			h.raw(`</span><span class="total">Total: `)
			h.num(p.Total)
			h.raw(`</span></li>`)
		}
		h.raw(`</ul></section>`)
	})
}
