package calendar

import (
	"strings"
	"testing"

	"github.com/campusconnect/campus-events/internal/event"
)

func TestFeed(t *testing.T) {
	events := []*event.ExternalEvent{
		{
			ID:          1,
			Title:       "Christmas Concert, with choir",
			Date:        "2025-12-02",
			Time:        "7:30 pm",
			Location:    "Abbey Basilica",
			Description: "Annual concert",
			URL:         "https://academic.test/calendar",
		},
		{
			ID:    2,
			Title: "Fall Break",
			Date:  "sometime in October", // raw fallback, not in the feed
		},
	}

	ics := Feed(events)

	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(ics, "END:VCALENDAR\r\n") {
		t.Fatal("feed is not wrapped in VCALENDAR")
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 1 {
		t.Fatalf("expected 1 VEVENT, got %d", got)
	}

	checks := []string{
		"UID:1@campusconnect\r\n",
		"DTSTART;VALUE=DATE:20251202\r\n",
		"DTEND;VALUE=DATE:20251203\r\n",
		"SUMMARY:Christmas Concert\\, with choir\r\n",
		"LOCATION:Abbey Basilica\r\n",
		"URL:https://academic.test/calendar\r\n",
	}
	for _, want := range checks {
		if !strings.Contains(ics, want) {
			t.Errorf("feed missing %q", want)
		}
	}

	if !strings.Contains(ics, "DESCRIPTION:Time: 7:30 pm\\nAnnual concert\r\n") {
		t.Error("description should lead with the free-text time")
	}
}

func TestFeedEmpty(t *testing.T) {
	ics := Feed(nil)
	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("empty input should produce an empty calendar")
	}
	if !strings.Contains(ics, "PRODID:") {
		t.Error("calendar header missing")
	}
}

func TestEscapeICS(t *testing.T) {
	if got := escapeICS(`a,b;c\d` + "\n"); got != `a\,b\;c\\d\n` {
		t.Errorf("unexpected escape result %q", got)
	}
}
