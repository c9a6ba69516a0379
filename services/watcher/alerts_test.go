package watcher

import (
	"testing"
	"time"

	"lottowatch-backend/lib/scrapers/nationallottery"

	"github.com/stretchr/testify/require"
)

func game(jackpot int64, rollCount int64) *nationallottery.Game {
	g := &nationallottery.Game{
		NextDrawDate: time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC),
		Jackpot:      jackpot,
	}
	if rollCount >= 0 {
		g.RollCount = &rollCount
	}
	return g
}

func TestMustBeWon(t *testing.T) {
	testCases := []struct {
		name     string
		previous *nationallottery.Game
		current  *nationallottery.Game
		expected bool
	}{
		{
			name:     "crossing the threshold fires",
			previous: game(2_000_000, 3),
			current:  game(5_000_000, 6),
			expected: true,
		},
		{
			name:     "already past the threshold does not re-fire",
			previous: game(5_000_000, 6),
			current:  game(5_000_000, 7),
			expected: false,
		},
		{
			name:     "first observation fires",
			previous: nil,
			current:  game(2_000_000, 1),
			expected: true,
		},
		{
			name:     "below the threshold stays quiet",
			previous: game(2_000_000, 2),
			current:  game(2_000_000, 3),
			expected: false,
		},
		{
			name:     "no current game means no evaluation",
			previous: game(5_000_000, 6),
			current:  nil,
			expected: false,
		},
		{
			name:     "missing roll count counts as zero",
			previous: game(2_000_000, -1),
			current:  game(5_000_000, 5),
			expected: true,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, MustBeWon(test.previous, test.current))
		})
	}
}

func TestJackpotOverThreshold(t *testing.T) {
	testCases := []struct {
		name     string
		previous *nationallottery.Game
		current  *nationallottery.Game
		expected bool
	}{
		{
			name:     "qualifying jackpot change fires",
			previous: game(90_000_000, -1),
			current:  game(120_000_000, -1),
			expected: true,
		},
		{
			name:     "unchanged jackpot does not re-fire",
			previous: game(120_000_000, -1),
			current:  game(120_000_000, -1),
			expected: false,
		},
		{
			// first observation alerts even below the threshold,
			// mirrored from the historical behavior (see DESIGN.md)
			name:     "first observation fires regardless of threshold",
			previous: nil,
			current:  game(50_000_000, -1),
			expected: true,
		},
		{
			name:     "change below the threshold stays quiet",
			previous: game(40_000_000, -1),
			current:  game(50_000_000, -1),
			expected: false,
		},
		{
			name:     "no current game means no evaluation",
			previous: game(120_000_000, -1),
			current:  nil,
			expected: false,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, JackpotOverThreshold(test.previous, test.current))
		})
	}
}
