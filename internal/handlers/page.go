package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"scorebuddies/internal/game"
	"scorebuddies/internal/viewmodel"
	"scorebuddies/pkg/realtime"
	"scorebuddies/views/components"
	"scorebuddies/views/pages"
)

// PageHandler serves the read side: the page, live fragments, the event
// stream and the JSON state.
type PageHandler struct {
	state   *game.State
	hub     *realtime.Broadcaster
	logger  *zap.Logger
	baseURL string
}

func NewPageHandler(state *game.State, hub *realtime.Broadcaster, logger *zap.Logger, baseURL string) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{state: state, hub: hub, logger: logger, baseURL: baseURL}
}

func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/fragments/{tab}", h.fragment)
	r.Get("/stream", h.stream)
	r.Get("/api/state", h.apiState)
}

func (h *PageHandler) home(w http.ResponseWriter, r *http.Request) {
	tab := viewmodel.ParseTab(r.URL.Query().Get("tab"))
	data := buildHomePage(h.state.View(), tab, buildShareURL(r, h.baseURL))
	render(w, r, pages.HomePage(data))
}

func (h *PageHandler) fragment(w http.ResponseWriter, r *http.Request) {
	tab := viewmodel.ParseTab(chi.URLParam(r, "tab"))
	data := buildHomePage(h.state.View(), tab, "")
	render(w, r, components.LiveFragment(data))
}

func (h *PageHandler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	tab := viewmodel.ParseTab(r.URL.Query().Get("tab"))
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	send := func(event string) {
		data := buildHomePage(h.state.View(), tab, "")
		writeSSE(w, event, renderToString(r, components.LiveFragment(data)))
		flusher.Flush()
	}

	send("snapshot")

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-sub:
			if !open {
				return
			}
			send(string(event))
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

// stateResponse is the persisted snapshot plus the transient UI markers.
type stateResponse struct {
	game.Snapshot
	EditingRound *int `json:"editingRound"`
	ViewingRound int  `json:"viewingRound"`
	TotalRounds  int  `json:"totalRounds"`
}

func (h *PageHandler) apiState(w http.ResponseWriter, r *http.Request) {
	resp := stateResponse{
		Snapshot:     h.state.Snapshot(),
		ViewingRound: h.state.ViewingRound(),
		TotalRounds:  h.state.TotalRounds(),
	}
	if n, ok := h.state.EditingRound(); ok {
		resp.EditingRound = &n
	}
	writeJSON(w, resp)
}
