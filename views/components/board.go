package components

import (
	"github.com/a-h/templ"

	"scorebuddies/internal/viewmodel"
)

// BoardFragment renders the leaderboard and round history.
func BoardFragment(data viewmodel.BoardTab) templ.Component {
	return component(func(h *html) {
		h.raw(`<section class="panel board"><h2>Scoreboard</h2>`)
		if len(data.Players) == 0 {
			h.raw(`<p class="empty">Add players first.</p></section>`)
			return
		}
		h.raw(`<ol class="standings">`)
		for _, p := range data.Players {
			h.raw(`<li class="rank-`)
			h.num(p.Rank)
			if p.Medal != "" {
				h.raw(` medal-`)
				h.text(p.Medal)
			}
			h.raw(`"><span class="rank">`)
			h.num(p.Rank)
			h.raw(`</span><span class="name">`)
			h.text(p.Name)
			h.raw(`</span><span class="total">`)
			h.num(p.Total)
			h.raw(`</span></li>`)
		}
		h.raw(`</ol>`)

		if len(data.History) > 0 {
			h.raw(`<h3>Round History</h3><table class="history"><thead><tr><th>Round</th><th>Scores</th></tr></thead><tbody>`)
			for _, row := range data.History {
				h.raw(`<tr><td><a href="`)
				h.text(roundPath(row.Number))
				h.raw(`">`)
				h.num(row.Number)
				h.raw(`</a></td><td><dl>`)
				for _, cell := range row.Cells {
					h.raw(`<dt>`)
					h.text(cell.Name)
					h.raw(`:</dt><dd>`)
					h.num(cell.Score)
					h.raw(`</dd>`)
				}
				h.raw(`</dl></td></tr>`)
			}
			h.raw(`</tbody></table>`)
		}
		h.raw(`</section>`)
	})
}

// BannerFragment renders the current leader strip.
func BannerFragment(data viewmodel.WinnerBanner) templ.Component {
	return component(func(h *html) {
		if !data.Visible {
			return
		}
		h.raw(`<div class="winner-banner">&#127942; `)
		h.text(data.Text)
		h.raw(`</div>`)
	})
}
