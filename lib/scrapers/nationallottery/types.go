// Package nationallottery scrapes the National Lottery games page into
// typed per-game records.
package nationallottery

import "time"

// GameID identifies one of the games tracked on the games page. The set
// is fixed by the upstream page, it is not user-extensible.
type GameID string

const (
	GameLotto                GameID = "lotto"
	GameEuromillions         GameID = "euromillions"
	GameThunderball          GameID = "thunderball"
	GameSetForLife           GameID = "setforlife"
	GameLottoHotpicks        GameID = "lotto-hotpicks"
	GameEuromillionsHotpicks GameID = "euromillions-hotpicks"
)

// DisplayNames maps game ids to the names the page shows in its game
// brand headers.
var DisplayNames = map[GameID]string{
	GameLotto:                "Lotto",
	GameEuromillions:         "EuroMillions",
	GameThunderball:          "Thunderball",
	GameSetForLife:           "Set For Life",
	GameLottoHotpicks:        "Lotto HotPicks",
	GameEuromillionsHotpicks: "EuroMillions HotPicks",
}

// TrackedGames returns every game id extraction runs over, in a stable
// order.
func TrackedGames() []GameID {
	return []GameID{
		GameLotto,
		GameEuromillions,
		GameThunderball,
		GameSetForLife,
		GameLottoHotpicks,
		GameEuromillionsHotpicks,
	}
}

// RawFieldSet holds the per-game fields extracted from the page before
// presence rules are applied. Zero values mean the field was not found;
// a field that failed to normalize is absent as well, except Jackpot
// which keeps the original text (see Amount).
type RawFieldSet struct {
	DisplayName  string
	DrawDate     *time.Time
	DrawDay      string
	DrawDays     string
	Price        string
	RollCount    *int64
	Jackpot      *Amount
	JackpotShort string
}

// Game is a validated snapshot of one game. It is only constructed when
// both the draw date and a resolved jackpot are available.
type Game struct {
	// NextDrawDate is a calendar date at midnight UTC.
	NextDrawDate time.Time
	// Jackpot is in whole base currency units.
	Jackpot int64
	// RollCount is nil for games without a rollover counter.
	RollCount *int64
}
