package event

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

const isoDate = "2006-01-02"

var (
	// "December 2" / "December 2, 2025" with the month name capitalized,
	// the way both campus calendars print dates.
	monthDayPattern = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2})(?:,?\s*(\d{4}))?`)

	// "12/2/2025"
	slashDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

	timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:am|pm))\s*-\s*(\d{1,2}:\d{2}\s*(?:am|pm))`)
	timePattern      = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:am|pm)`)
)

// NormalizeDate converts cleaned date text into ISO YYYY-MM-DD.
// Text that cannot be parsed is returned unchanged: malformed dates are
// data, not errors.
func NormalizeDate(text string) string {
	if text == "" {
		return ""
	}

	// "December 2, 2025" or "December 2" (current year assumed)
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		year := time.Now().Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		t, err := time.Parse("January 2 2006", fmt.Sprintf("%s %s %d", m[1], m[2], year))
		if err == nil {
			return t.Format(isoDate)
		}
	}

	// "12/2/2025"
	if m := slashDatePattern.FindStringSubmatch(text); m != nil {
		t, err := time.Parse("1/2/2006", m[0])
		if err == nil {
			return t.Format(isoDate)
		}
	}

	// Already ISO
	if t, err := time.Parse(isoDate, text); err == nil {
		return t.Format(isoDate)
	}

	// Last resort: lenient parse over the whole string.
	if t, err := dateparse.ParseAny(text); err == nil {
		return t.Format(isoDate)
	}

	return text
}

// IsISODate reports whether s is a valid YYYY-MM-DD date.
func IsISODate(s string) bool {
	_, err := time.Parse(isoDate, s)
	return err == nil
}

// ExtractDateText returns the first date-looking substring of text,
// or "" when none is present.
func ExtractDateText(text string) string {
	if m := monthDayPattern.FindString(text); m != "" {
		return m
	}
	return slashDatePattern.FindString(text)
}

// ExtractTime returns the first clock time or time range in text,
// or "" when none is present.
func ExtractTime(text string) string {
	if m := timeRangePattern.FindStringSubmatch(text); m != nil {
		return m[1] + " - " + m[2]
	}
	return timePattern.FindString(text)
}

// HasDateOrTime reports whether text mentions a recognizable date or
// clock time. The scraper uses this to recognize event blocks.
func HasDateOrTime(text string) bool {
	return monthDayPattern.MatchString(text) ||
		slashDatePattern.MatchString(text) ||
		timePattern.MatchString(text)
}
