package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"scorebuddies/internal/game"
	"scorebuddies/internal/viewmodel"
	"scorebuddies/pkg/realtime"
)

// GameHandler serves the mutations: players, rounds and reset.
type GameHandler struct {
	state  *game.State
	hub    *realtime.Broadcaster
	logger *zap.Logger
}

func NewGameHandler(state *game.State, hub *realtime.Broadcaster, logger *zap.Logger) *GameHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameHandler{state: state, hub: hub, logger: logger}
}

func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Post("/players", h.addPlayer)
	r.Post("/reset", h.reset)
	r.Route("/rounds", func(r chi.Router) {
		r.Post("/", h.addRound)
		r.Get("/{n}", h.viewRound)
		r.Post("/{n}", h.updateRound)
		r.Post("/{n}/edit", h.editRound)
		r.Post("/{n}/cancel", h.cancelEdit)
		r.Post("/{n}/delete", h.deleteRound)
	})
}

func (h *GameHandler) addPlayer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	player, err := h.state.AddNamedPlayer(r.Context(), r.FormValue("name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Info("player added", zap.String("player", player.ID), zap.String("name", player.Name))
	h.hub.PublishAll(realtime.EventPlayers, realtime.EventBoard)
	h.finish(w, r, viewmodel.TabPlayers)
}

func (h *GameHandler) addRound(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	scores, err := parseScores(r, h.state.Players())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	round := h.state.AddRound(r.Context(), scores)
	h.logger.Info("round added", zap.Int("round", round.Number))
	h.hub.PublishAll(realtime.EventRounds, realtime.EventBoard)
	h.finish(w, r, viewmodel.TabScore)
}

func (h *GameHandler) viewRound(w http.ResponseWriter, r *http.Request) {
	n, err := roundParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.state.SetViewingRound(clampRound(n, h.state.TotalRounds()+1))
	h.state.ClearEditingRound()
	http.Redirect(w, r, "/?tab="+string(viewmodel.TabScore), http.StatusSeeOther)
}

func (h *GameHandler) editRound(w http.ResponseWriter, r *http.Request) {
	n, ok := h.existingRound(w, r)
	if !ok {
		return
	}
	h.state.SetViewingRound(n)
	h.state.SetEditingRound(n)
	h.finish(w, r, viewmodel.TabScore)
}

func (h *GameHandler) cancelEdit(w http.ResponseWriter, r *http.Request) {
	h.state.ClearEditingRound()
	h.finish(w, r, viewmodel.TabScore)
}

func (h *GameHandler) updateRound(w http.ResponseWriter, r *http.Request) {
	n, err := roundParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	scores, err := parseScores(r, h.state.Players())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := h.state.UpdateRound(r.Context(), n, scores); !ok {
		http.NotFound(w, r)
		return
	}
	h.logger.Info("round updated", zap.Int("round", n))
	h.hub.PublishAll(realtime.EventRounds, realtime.EventBoard)
	h.finish(w, r, viewmodel.TabScore)
}

func (h *GameHandler) deleteRound(w http.ResponseWriter, r *http.Request) {
	n, err := roundParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !h.state.DeleteRound(r.Context(), n) {
		http.NotFound(w, r)
		return
	}
	h.logger.Info("round deleted", zap.Int("round", n))
	h.hub.PublishAll(realtime.EventRounds, realtime.EventBoard)
	h.finish(w, r, viewmodel.TabScore)
}

func (h *GameHandler) reset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if r.FormValue("confirm") != "yes" {
		http.Error(w, "reset must be confirmed", http.StatusBadRequest)
		return
	}
	h.state.Reset(r.Context())
	h.logger.Info("game reset")
	h.hub.Publish(realtime.EventReset)
	h.finish(w, r, viewmodel.TabPlayers)
}

// existingRound resolves {n} and writes 400/404 when it is not a current round.
func (h *GameHandler) existingRound(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := roundParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	if _, ok := h.state.RoundByNumber(n); !ok {
		http.NotFound(w, r)
		return 0, false
	}
	return n, true
}

func (h *GameHandler) finish(w http.ResponseWriter, r *http.Request, tab viewmodel.Tab) {
	if isHTMXRequest(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/?tab="+string(tab), http.StatusSeeOther)
}

func roundParam(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid round number")
	}
	return n, nil
}

// parseScores reads one score-<playerID> field per player. Blank fields
// count as 0.
func parseScores(r *http.Request, players []game.Player) (map[string]int, error) {
	scores := make(map[string]int, len(players))
	for _, p := range players {
		raw := strings.TrimSpace(r.FormValue("score-" + p.ID))
		if raw == "" {
			scores[p.ID] = 0
			continue
		}
		score, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("score for %s must be a whole number", p.Name)
		}
		scores[p.ID] = score
	}
	return scores, nil
}
