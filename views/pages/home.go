package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"scorebuddies/internal/viewmodel"
	"scorebuddies/views/components"
)

// HomePage renders the full single-page app shell.
func HomePage(data viewmodel.HomePage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(data.Title)+`</title>`+
			`<link rel="stylesheet" href="/static/app.css"><script defer src="/static/app.js"></script>`+
			`</head><body><div class="app"><header class="app-header"><h1>`+templ.EscapeString(data.Title)+`</h1>`); err != nil {
			return err
		}
		if data.ShareURL != "" {
			if _, err := io.WriteString(w, `<a class="share" href="`+templ.EscapeString(data.ShareURL)+`">`+templ.EscapeString(data.ShareURL)+`</a>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</header>`); err != nil {
			return err
		}
		if err := components.TabNav(data.Tab, data.HasPlayers).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main id="live" data-tab="`+templ.EscapeString(string(data.Tab))+`">`); err != nil {
			return err
		}
		if err := components.LiveFragment(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><footer class="app-footer"><form method="post" action="/reset" class="confirm" data-confirm="Reset the game? All players and rounds will be lost.">`+
			`<input type="hidden" name="confirm" value="yes"><button type="submit" class="danger">Reset game</button></form></footer></div></body></html>`)
		return err
	})
}
