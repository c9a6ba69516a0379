package watcher

import (
	"lottowatch-backend/lib/scrapers/nationallottery"
)

const mustBeWonRollCount = 5
const jackpotAlertUnits = 100_000_000

// MustBeWon reports whether the "must be won" alert holds for a game
// with a rollover counter. The alert is edge-triggered: it fires when
// the roll count crosses the threshold, not while it stays above it, so
// repeated runs do not notify twice. A first observation always fires.
func MustBeWon(previous, current *nationallottery.Game) bool {
	if current == nil {
		return false
	}
	if previous == nil {
		return true
	}
	return rollCount(previous) < mustBeWonRollCount &&
		rollCount(current) >= mustBeWonRollCount
}

// JackpotOverThreshold reports whether the big-jackpot alert holds. It
// re-fires only when the qualifying jackpot value changes between runs.
// A first observation always fires, even below the threshold; that
// mirrors long-standing behavior and likely over-alerts, see DESIGN.md.
func JackpotOverThreshold(previous, current *nationallottery.Game) bool {
	if current == nil {
		return false
	}
	if previous == nil {
		return true
	}
	return current.Jackpot >= jackpotAlertUnits &&
		current.Jackpot != previous.Jackpot
}

func rollCount(game *nationallottery.Game) int64 {
	if game.RollCount == nil {
		return 0
	}
	return *game.RollCount
}
