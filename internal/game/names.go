package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest player name kept, in runes.
const MaxNameLength = 20

var (
	ErrNameRequired  = errors.New("name required")
	ErrDuplicateName = errors.New("a player with that name already exists")
)

// NormalizeName trims and truncates raw, rejecting empty names and names
// already taken by existing (case-insensitively).
func NormalizeName(raw string, existing []Player) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	for _, p := range existing {
		if strings.EqualFold(p.Name, name) {
			return "", ErrDuplicateName
		}
	}
	return name, nil
}

// FindPlayer resolves ref against player ids first, then names
// (case-insensitively).
func FindPlayer(players []Player, ref string) (Player, bool) {
	ref = strings.TrimSpace(ref)
	for _, p := range players {
		if p.ID == ref {
			return p, true
		}
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, ref) {
			return p, true
		}
	}
	return Player{}, false
}
