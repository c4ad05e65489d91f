// Package components renders the HTML fragments of the scoreboard UI.
package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// html accumulates writes and remembers the first error, so component bodies
// read top to bottom.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) num(n int) {
	h.raw(strconv.Itoa(n))
}

func (h *html) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// component wraps a body writer as a templ.Component.
func component(body func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{ctx: ctx, w: w}
		body(h)
		return h.err
	})
}
