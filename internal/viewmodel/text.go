package viewmodel

import (
	"fmt"
	"strings"
)

// LeaderText describes the current leader, or the tied leaders, holding
// points.
func LeaderText(names []string, points int) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Current Leader: %s (%d points)", names[0], points)
	}
	return fmt.Sprintf("Tied Leaders: %s (%d points)", strings.Join(names, ", "), points)
}

// Medal names the podium style for a rank, or "" off the podium.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	default:
		return ""
	}
}
