package analytics

import (
	"sort"

	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// UserTotal is one leaderboard row: a user and their summed emissions.
type UserTotal struct {
	UserID   string
	CarbonKg float64
}

// Leaderboard groups the ledger by user, sums emissions, and ranks users
// ascending by total so the lowest emitter comes first. Users with equal
// totals order by user id, which keeps the ranking deterministic across
// runs (the historical behavior left ties unspecified).
func Leaderboard(records []ledger.Record) []UserTotal {
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[rec.UserID] += rec.CarbonKg
	}

	board := make([]UserTotal, 0, len(totals))
	for userID, kg := range totals {
		board = append(board, UserTotal{UserID: userID, CarbonKg: kg})
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].CarbonKg != board[j].CarbonKg {
			return board[i].CarbonKg < board[j].CarbonKg
		}
		return board[i].UserID < board[j].UserID
	})
	return board
}
