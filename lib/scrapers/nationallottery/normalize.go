package nationallottery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrBadFormat = fmt.Errorf("text does not match the expected format")

var drawDateRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// ParseDrawDate parses the page's day-month-year draw date format,
// e.g. "18-07-2025". The result is a calendar date at midnight UTC.
func ParseDrawDate(raw string) (time.Time, error) {
	if !drawDateRegex.MatchString(raw) {
		return time.Time{}, fmt.Errorf("%w: draw date %q", ErrBadFormat, raw)
	}
	date, err := time.ParseInLocation("02-01-2006", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: draw date %q", ErrBadFormat, raw)
	}
	return date, nil
}

// Amount is a currency amount normalized from scraped text. When the
// text cannot be normalized, the original text is kept and Ok is false;
// such an amount must never be treated as a number.
type Amount struct {
	// Units is the amount in whole base currency units.
	Units int64
	// Raw is the text the amount was normalized from.
	Raw string
	// Ok reports whether Raw resolved into Units.
	Ok bool
}

// currencySymbols includes the mis-encoded rendering of the pound sign
// the page produces when its latin-1 bytes are decoded as utf-8.
var currencySymbols = []string{"Â£", "£"}

type suffixGroup struct {
	tokens     []string
	multiplier int64
}

// scanned in order, the last group with any match decides the
// multiplier. within a group the longer token comes first so its
// removal also consumes the shorter one.
var suffixGroups = []suffixGroup{
	{tokens: []string{"million", "m"}, multiplier: 1_000_000},
	{tokens: []string{"thousand", "k"}, multiplier: 1_000},
}

// ParseJackpot normalizes a scraped jackpot string such as "£96,000,000"
// or "£14M" into whole currency units. Unparseable text comes back as an
// unresolved Amount carrying the original input.
func ParseJackpot(raw string) Amount {
	s := strings.TrimSpace(raw)
	for _, sym := range currencySymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ToLower(s)

	multiplier := int64(1)
	for _, group := range suffixGroups {
		matched := false
		for _, tok := range group.tokens {
			if strings.Contains(s, tok) {
				matched = true
				s = strings.ReplaceAll(s, tok, "")
			}
		}
		if matched {
			multiplier = group.multiplier
		}
	}

	s = strings.TrimSpace(s)
	units, ok := parseDecimal(s, multiplier)
	if !ok || units < 0 {
		return Amount{Raw: raw}
	}
	return Amount{Units: units, Raw: raw, Ok: true}
}

// parseDecimal parses a non-negative decimal number and scales it by
// multiplier, truncating any remaining fraction.
func parseDecimal(s string, multiplier int64) (int64, bool) {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, false
	}

	var units int64
	if intPart != "" {
		n, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, false
		}
		units = n * multiplier
	}
	if !hasFrac {
		return units, true
	}

	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, false
	}
	scale := int64(1)
	for i := 0; i < len(fracPart); i++ {
		scale *= 10
	}
	return units + frac*multiplier/scale, true
}
