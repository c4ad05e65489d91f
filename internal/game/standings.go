package game

import (
	"sort"

	"golang.org/x/text/collate"
)

// Ranking selects how tied totals affect the ranks that follow them.
type Ranking int

const (
	// DenseRanking gives the next distinct total the next rank: 1, 1, 2.
	DenseRanking Ranking = iota
	// CompetitionRanking skips ranks after a tie: 1, 1, 3.
	CompetitionRanking
)

// recalculate rebuilds every derived player field from the round list.
func recalculate(players []Player, rounds []Round, ranking Ranking) {
	calculateTotals(players, rounds)
	assignRanks(players, ranking)
}

// calculateTotals is always a full pass over rounds, never a delta.
func calculateTotals(players []Player, rounds []Round) {
	for i := range players {
		scores := make([]int, 0, len(rounds))
		total := 0
		for _, r := range rounds {
			score := r.ScoreFor(players[i].ID)
			scores = append(scores, score)
			total += score
		}
		players[i].RoundScores = scores
		players[i].TotalScore = total
	}
}

func assignRanks(players []Player, ranking Ranking) {
	order := make([]int, len(players))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return players[order[a]].TotalScore > players[order[b]].TotalScore
	})

	rank := 0
	var last int
	for pos, idx := range order {
		score := players[idx].TotalScore
		if pos == 0 || score != last {
			if ranking == CompetitionRanking {
				rank = pos + 1
			} else {
				rank++
			}
		}
		players[idx].Rank = rank
		last = score
	}
}

// winners returns the players sharing the highest total, in list order.
func winners(players []Player) []Player {
	if len(players) == 0 {
		return nil
	}
	top := players[0].TotalScore
	for _, p := range players[1:] {
		if p.TotalScore > top {
			top = p.TotalScore
		}
	}
	out := make([]Player, 0, 1)
	for _, p := range players {
		if p.TotalScore == top {
			out = append(out, p.clone())
		}
	}
	return out
}

func sortAlphabetic(players []Player, c *collate.Collator) {
	sort.SliceStable(players, func(i, j int) bool {
		return c.CompareString(players[i].Name, players[j].Name) < 0
	})
}

func sortRanked(players []Player, c *collate.Collator) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Rank == players[j].Rank {
			return c.CompareString(players[i].Name, players[j].Name) < 0
		}
		return players[i].Rank < players[j].Rank
	})
}

// renumber makes round numbers the contiguous sequence 1..N in list order.
func renumber(rounds []Round) {
	for i := range rounds {
		rounds[i].Number = i + 1
	}
}
