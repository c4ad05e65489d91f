package game

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"scorebuddies/internal/kv"
)

// DefaultKey is the store key the snapshot lives under.
const DefaultKey = "scorebuddies-game"

// State owns the players and rounds of the single game being tracked and
// keeps every derived value (totals, per-round scores, ranks) in step with
// them. Each mutation recalculates and then persists before returning.
type State struct {
	mu       sync.Mutex
	store    kv.Store
	key      string
	logger   *zap.Logger
	newID    func() string
	now      func() time.Time
	ranking  Ranking
	collator *collate.Collator

	players      []Player
	rounds       []Round
	currentRound int
	editingRound int // 0 when no round is being edited
	viewingRound int
	createdAt    time.Time
}

// Option configures a State.
type Option func(*State)

// WithKey overrides the store key.
func WithKey(key string) Option {
	return func(s *State) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for load and persist diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces the uuid-based id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *State) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces time.Now for snapshot timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *State) {
		if fn != nil {
			s.now = fn
		}
	}
}

// WithRanking selects the tie handling for ranks.
func WithRanking(r Ranking) Option {
	return func(s *State) { s.ranking = r }
}

// WithLanguage sets the collation used for name ordering.
func WithLanguage(tag language.Tag) Option {
	return func(s *State) { s.collator = collate.New(tag, collate.IgnoreCase) }
}

// New builds a State backed by store and hydrates it from the persisted
// snapshot. A missing or unreadable snapshot yields an empty game.
func New(ctx context.Context, store kv.Store, opts ...Option) *State {
	s := &State{
		store:        store,
		key:          DefaultKey,
		logger:       zap.NewNop(),
		newID:        uuid.NewString,
		now:          func() time.Time { return time.Now().UTC() },
		collator:     collate.New(language.English, collate.IgnoreCase),
		players:      []Player{},
		rounds:       []Round{},
		currentRound: 1,
		viewingRound: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.createdAt = s.now()
	s.mu.Lock()
	s.load(ctx)
	s.mu.Unlock()
	return s
}

// AddPlayer registers a player with a fresh id. Name validation is the
// caller's job; the name is only trimmed here.
func (s *State) AddPlayer(ctx context.Context, name string) Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addPlayerLocked(ctx, name)
}

func (s *State) addPlayerLocked(ctx context.Context, name string) Player {
	player := Player{
		ID:          s.newID(),
		Name:        strings.TrimSpace(name),
		RoundScores: []int{},
	}
	s.players = append(s.players, player)
	recalculate(s.players, s.rounds, s.ranking)
	s.persist(ctx)
	s.logger.Debug("player added", zap.String("player", player.ID), zap.String("name", player.Name))
	return s.players[len(s.players)-1].clone()
}

// AddNamedPlayer validates raw with NormalizeName against the current roster
// and registers it. Both steps run under one lock.
func (s *State) AddNamedPlayer(ctx context.Context, raw string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, err := NormalizeName(raw, s.players)
	if err != nil {
		return Player{}, err
	}
	return s.addPlayerLocked(ctx, name), nil
}

// AddRound appends a round scored for every current player and moves the
// viewing marker to the next unplayed round. Players missing from scores get
// 0; ids that are not current players are ignored.
func (s *State) AddRound(ctx context.Context, scores map[string]int) Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	round := Round{
		ID:     s.newID(),
		Number: len(s.rounds) + 1,
		Scores: s.scoresForPlayers(scores),
	}
	s.rounds = append(s.rounds, round)
	recalculate(s.players, s.rounds, s.ranking)
	s.currentRound++
	s.viewingRound = len(s.rounds) + 1
	s.persist(ctx)
	s.logger.Debug("round added", zap.Int("round", round.Number), zap.Int("scores", len(round.Scores)))
	return round.clone()
}

// UpdateRound replaces the scores of round n, keeping its id and number, and
// clears the editing marker. It reports false and changes nothing when no
// such round exists.
func (s *State) UpdateRound(ctx context.Context, n int, scores map[string]int) (Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.roundIndex(n)
	if idx < 0 {
		s.logger.Debug("update of unknown round ignored", zap.Int("round", n))
		return Round{}, false
	}
	s.rounds[idx].Scores = s.scoresForPlayers(scores)
	recalculate(s.players, s.rounds, s.ranking)
	s.editingRound = 0
	s.persist(ctx)
	s.logger.Debug("round updated", zap.Int("round", n))
	return s.rounds[idx].clone(), true
}

// DeleteRound removes round n and renumbers the rest to 1..N-1. When the
// current round counter runs past the remaining rounds it is clamped to
// N-1+1. The viewing marker moves to the round before the deleted one.
// Reports false when no such round exists.
func (s *State) DeleteRound(ctx context.Context, n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.roundIndex(n)
	if idx < 0 {
		s.logger.Debug("delete of unknown round ignored", zap.Int("round", n))
		return false
	}
	s.rounds = append(s.rounds[:idx], s.rounds[idx+1:]...)
	renumber(s.rounds)
	recalculate(s.players, s.rounds, s.ranking)
	if s.currentRound > len(s.rounds) {
		s.currentRound = len(s.rounds) + 1
	}
	s.editingRound = 0
	s.viewingRound = max(1, n-1)
	s.persist(ctx)
	s.logger.Debug("round deleted", zap.Int("round", n), zap.Int("remaining", len(s.rounds)))
	return true
}

// Reset empties the game and erases the persisted snapshot.
func (s *State) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = []Player{}
	s.rounds = []Round{}
	s.currentRound = 1
	s.editingRound = 0
	s.viewingRound = 1
	s.createdAt = s.now()
	if err := s.store.Delete(ctx, s.key); err != nil {
		s.logger.Error("erase snapshot failed", zap.String("key", s.key), zap.Error(err))
	}
	s.logger.Info("game reset")
}

// Winners returns every player sharing the highest total, or nil when there
// are no players.
func (s *State) Winners() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return winners(s.players)
}

// RoundByNumber looks up a round by its 1-based number.
func (s *State) RoundByNumber(n int) (Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.roundIndex(n)
	if idx < 0 {
		return Round{}, false
	}
	return s.rounds[idx].clone(), true
}

// Players returns the players in registration order.
func (s *State) Players() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePlayers(s.players)
}

// AlphabeticPlayers returns the players ordered by name.
func (s *State) AlphabeticPlayers() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := clonePlayers(s.players)
	sortAlphabetic(out, s.collator)
	return out
}

// RankedPlayers returns the players ordered by rank, then name.
func (s *State) RankedPlayers() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := clonePlayers(s.players)
	sortRanked(out, s.collator)
	return out
}

func (s *State) Rounds() []Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRounds(s.rounds)
}

func (s *State) TotalRounds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rounds)
}

func (s *State) CurrentRound() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRound
}

// SetCurrentRound overwrites the informational round counter and persists it.
func (s *State) SetCurrentRound(ctx context.Context, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentRound = n
	s.persist(ctx)
}

// EditingRound reports the round being edited, if any.
func (s *State) EditingRound() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingRound, s.editingRound != 0
}

func (s *State) SetEditingRound(n int) {
	s.mu.Lock()
	s.editingRound = n
	s.mu.Unlock()
}

func (s *State) ClearEditingRound() {
	s.SetEditingRound(0)
}

func (s *State) ViewingRound() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewingRound
}

func (s *State) SetViewingRound(n int) {
	s.mu.Lock()
	s.viewingRound = n
	s.mu.Unlock()
}

// View is a consistent copy of everything the presentation layer reads.
type View struct {
	Players           []Player
	AlphabeticPlayers []Player
	RankedPlayers     []Player
	Rounds            []Round
	Winners           []Player
	CurrentRound      int
	EditingRound      int
	ViewingRound      int
	TotalRounds       int
}

// IsEditing reports whether a round is being edited.
func (v View) IsEditing() bool {
	return v.EditingRound != 0
}

// RoundByNumber looks up a round in the view.
func (v View) RoundByNumber(n int) (Round, bool) {
	for _, r := range v.Rounds {
		if r.Number == n {
			return r, true
		}
	}
	return Round{}, false
}

// View returns a copy of the state taken under a single lock.
func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	alpha := clonePlayers(s.players)
	sortAlphabetic(alpha, s.collator)
	ranked := clonePlayers(s.players)
	sortRanked(ranked, s.collator)
	return View{
		Players:           clonePlayers(s.players),
		AlphabeticPlayers: alpha,
		RankedPlayers:     ranked,
		Rounds:            cloneRounds(s.rounds),
		Winners:           winners(s.players),
		CurrentRound:      s.currentRound,
		EditingRound:      s.editingRound,
		ViewingRound:      s.viewingRound,
		TotalRounds:       len(s.rounds),
	}
}

// scoresForPlayers builds one entry per current player in player order.
func (s *State) scoresForPlayers(scores map[string]int) []Score {
	out := make([]Score, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, Score{PlayerID: p.ID, Score: scores[p.ID]})
	}
	return out
}

func (s *State) roundIndex(n int) int {
	for i, r := range s.rounds {
		if r.Number == n {
			return i
		}
	}
	return -1
}
