package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"scorebuddies/internal/kv"
)

const (
	snapshotID   = "current-game"
	snapshotName = "Current Game"
)

// Snapshot is the persisted form of the game. ID, Name and CreatedAt are
// informational and never used to rebuild state.
type Snapshot struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Players      []Player  `json:"players" yaml:"players"`
	Rounds       []Round   `json:"rounds" yaml:"rounds"`
	CurrentRound int       `json:"currentRound" yaml:"currentRound"`
	CreatedAt    time.Time `json:"createdAt" yaml:"createdAt"`
}

// EncodeSnapshot serializes a snapshot to its stored JSON form.
func EncodeSnapshot(snap Snapshot) (string, error) {
	if snap.Players == nil {
		snap.Players = []Player{}
	}
	if snap.Rounds == nil {
		snap.Rounds = []Round{}
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(raw), nil
}

// DecodeSnapshot parses a stored snapshot.
func DecodeSnapshot(raw string) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Players == nil {
		snap.Players = []Player{}
	}
	if snap.Rounds == nil {
		snap.Rounds = []Round{}
	}
	for i := range snap.Players {
		if snap.Players[i].RoundScores == nil {
			snap.Players[i].RoundScores = []int{}
		}
	}
	for i := range snap.Rounds {
		if snap.Rounds[i].Scores == nil {
			snap.Rounds[i].Scores = []Score{}
		}
	}
	return snap, nil
}

// Snapshot returns the persisted form of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		ID:           snapshotID,
		Name:         snapshotName,
		Players:      clonePlayers(s.players),
		Rounds:       cloneRounds(s.rounds),
		CurrentRound: s.currentRound,
		CreatedAt:    s.createdAt,
	}
}

// persist writes the snapshot. Failures are logged; the in-memory state stays
// authoritative.
func (s *State) persist(ctx context.Context) {
	raw, err := EncodeSnapshot(s.snapshotLocked())
	if err != nil {
		s.logger.Error("encode snapshot failed", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, s.key, raw); err != nil {
		s.logger.Error("write snapshot failed", zap.String("key", s.key), zap.Error(err))
	}
}

// load hydrates from the store. Any failure leaves the empty initial state.
func (s *State) load(ctx context.Context) {
	raw, err := s.store.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		s.logger.Debug("no saved game", zap.String("key", s.key))
		return
	}
	if err != nil {
		s.logger.Warn("read snapshot failed, starting empty", zap.String("key", s.key), zap.Error(err))
		return
	}
	snap, err := DecodeSnapshot(raw)
	if err != nil {
		s.logger.Warn("malformed snapshot discarded, starting empty", zap.String("key", s.key), zap.Error(err))
		return
	}

	s.players = snap.Players
	s.rounds = snap.Rounds
	renumber(s.rounds)
	recalculate(s.players, s.rounds, s.ranking)
	s.currentRound = snap.CurrentRound
	if s.currentRound < 1 {
		s.currentRound = len(s.rounds) + 1
	}
	if !snap.CreatedAt.IsZero() {
		s.createdAt = snap.CreatedAt
	}
	s.logger.Info("game restored",
		zap.Int("players", len(s.players)),
		zap.Int("rounds", len(s.rounds)),
		zap.Int("currentRound", s.currentRound))
}
