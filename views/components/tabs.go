package components

import (
	"github.com/a-h/templ"

	"scorebuddies/internal/viewmodel"
)

var tabLabels = []struct {
	tab   viewmodel.Tab
	label string
}{
	{viewmodel.TabPlayers, "Players"},
	{viewmodel.TabScore, "Score"},
	{viewmodel.TabBoard, "Board"},
}

// TabNav renders the tab bar. Score and board need at least one player.
func TabNav(active viewmodel.Tab, hasPlayers bool) templ.Component {
	return component(func(h *html) {
		h.raw(`<nav class="tabs">`)
		for _, t := range tabLabels {
			if t.tab != viewmodel.TabPlayers && !hasPlayers {
				h.raw(`<span class="tab disabled">`)
				h.text(t.label)
				h.raw(`</span>`)
				continue
			}
			h.raw(`<a class="tab`)
			if t.tab == active {
				h.raw(` active`)
			}
			h.raw(`" href="/?tab=`)
			h.text(string(t.tab))
			h.raw(`">`)
			h.text(t.label)
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)
	})
}

// LiveFragment is the region refreshed on server-sent events: the active tab
// body plus the winner banner.
func LiveFragment(data viewmodel.HomePage) templ.Component {
	return component(func(h *html) {
		switch data.Tab {
		case viewmodel.TabScore:
			h.render(ScoreFragment(data.Score))
		case viewmodel.TabBoard:
			h.render(BoardFragment(data.Board))
		default:
			h.render(PlayersFragment(data.Players))
		}
		h.render(BannerFragment(data.Banner))
	})
}
