package game

// Player is a registered participant. TotalScore, RoundScores and Rank are
// derived from the round list and are only written by recalculation.
type Player struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	TotalScore  int    `json:"totalScore" yaml:"totalScore"`
	RoundScores []int  `json:"rounds" yaml:"rounds"`
	Rank        int    `json:"rank" yaml:"rank"`
}

// Score is one player's result in a round.
type Score struct {
	PlayerID string `json:"playerId" yaml:"playerId"`
	Score    int    `json:"score" yaml:"score"`
}

// Round is one completed scoring event. Number is 1-based and contiguous
// across the round list.
type Round struct {
	ID     string  `json:"id" yaml:"id"`
	Number int     `json:"roundNumber" yaml:"roundNumber"`
	Scores []Score `json:"scores" yaml:"scores"`
}

// ScoreFor returns the player's score in the round, or 0 when the player has
// no entry.
func (r Round) ScoreFor(playerID string) int {
	for _, s := range r.Scores {
		if s.PlayerID == playerID {
			return s.Score
		}
	}
	return 0
}

func (p Player) clone() Player {
	out := p
	out.RoundScores = append(make([]int, 0, len(p.RoundScores)), p.RoundScores...)
	return out
}

func (r Round) clone() Round {
	out := r
	out.Scores = append(make([]Score, 0, len(r.Scores)), r.Scores...)
	return out
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, p.clone())
	}
	return out
}

func cloneRounds(rounds []Round) []Round {
	out := make([]Round, 0, len(rounds))
	for _, r := range rounds {
		out = append(out, r.clone())
	}
	return out
}
