package nationallottery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDrawDate(t *testing.T) {
	date, err := ParseDrawDate("18-07-2025")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC), date)

	for _, raw := range []string{
		"2025-07-18",
		"18/07/2025",
		"8-7-2025",
		"99-99-2025",
		"Friday 18 July",
		"",
	} {
		_, err := ParseDrawDate(raw)
		require.ErrorIs(t, err, ErrBadFormat, "input %q", raw)
	}
}

func TestParseJackpot(t *testing.T) {
	testCases := []struct {
		raw      string
		expected int64
	}{
		{raw: "£1,000,000", expected: 1_000_000},
		{raw: "£96,000,000", expected: 96_000_000},
		{raw: "£14M", expected: 14_000_000},
		{raw: "£96M", expected: 96_000_000},
		// the page serves latin-1 pound signs that often survive a
		// utf-8 decode as two bytes
		{raw: "Â£2,500,000", expected: 2_500_000},
		{raw: "£1.5 Million", expected: 1_500_000},
		{raw: "£500 thousand", expected: 500_000},
		{raw: "£120K", expected: 120_000},
		{raw: "96000000", expected: 96_000_000},
		{raw: "  £3,800,000 ", expected: 3_800_000},
		{raw: "£0", expected: 0},
	}

	for _, test := range testCases {
		amount := ParseJackpot(test.raw)
		require.True(t, amount.Ok, "input %q", test.raw)
		require.Equal(t, test.expected, amount.Units, "input %q", test.raw)
	}
}

func TestParseJackpotFallback(t *testing.T) {
	for _, raw := range []string{
		"TBC",
		"",
		"£",
		"over £100 million estimated!?",
	} {
		amount := ParseJackpot(raw)
		require.False(t, amount.Ok, "input %q", raw)
		require.Equal(t, raw, amount.Raw, "input %q", raw)
	}
}

// pins the documented tie-break: suffix groups are scanned million
// first then thousand, the last group with a match decides the
// multiplier
func TestParseJackpotSuffixTieBreak(t *testing.T) {
	amount := ParseJackpot("£1.5 thousand million")
	require.True(t, amount.Ok)
	require.Equal(t, int64(1_500), amount.Units)
}
