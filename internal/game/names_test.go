package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	existing := []Player{{ID: "p1", Name: "Alice"}}

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "trimmed", raw: "  Bob ", want: "Bob"},
		{name: "truncated", raw: strings.Repeat("x", 25), want: strings.Repeat("x", MaxNameLength)},
		{name: "multibyte truncated by rune", raw: strings.Repeat("é", 30), want: strings.Repeat("é", MaxNameLength)},
		{name: "empty", raw: "   ", wantErr: ErrNameRequired},
		{name: "duplicate any case", raw: "ALICE", wantErr: ErrDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.raw, existing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindPlayer(t *testing.T) {
	players := []Player{{ID: "p1", Name: "Alice"}, {ID: "p2", Name: "p1"}}

	p, ok := FindPlayer(players, "p1")
	require.True(t, ok)
	assert.Equal(t, "Alice", p.Name, "ids win over names")

	p, ok = FindPlayer(players, " alice ")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)

	_, ok = FindPlayer(players, "carol")
	assert.False(t, ok)
}
