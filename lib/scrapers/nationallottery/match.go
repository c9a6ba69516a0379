package nationallottery

import (
	"lottowatch-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

// similarity below this is considered a different game entirely
const minDisplayNameSimilarity = 0.9

// MatchGameID resolves a display name scraped from a game brand header
// to a tracked game id. Exact comparison happens on normalized names,
// falling back to the closest fuzzy match so minor copy changes on the
// page ("EuroMillions!" and the like) do not drop the game.
func MatchGameID(displayName string) (GameID, bool) {
	normalized := textutil.NormalizeName(displayName)
	if normalized == "" {
		return "", false
	}

	for id, name := range DisplayNames {
		if textutil.NormalizeName(name) == normalized {
			return id, true
		}
	}

	var best GameID
	var bestSimilarity float64
	for _, id := range TrackedGames() {
		similarity := matchr.JaroWinkler(
			normalized,
			textutil.NormalizeName(DisplayNames[id]),
			false,
		)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = id
		}
	}
	if bestSimilarity < minDisplayNameSimilarity {
		return "", false
	}
	return best, true
}
