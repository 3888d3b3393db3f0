// Package calendar generates iCalendar feeds for stored campus events.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/campus-events/internal/event"
)

// Feed generates an iCalendar document containing one VEVENT per stored
// event with a parseable ISO date. Events whose date fell back to raw text
// are omitted from the feed; they remain visible on the web pages.
func Feed(events []*event.ExternalEvent) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//CampusConnect//campus-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, evt := range events {
		day, err := time.Parse("2006-01-02", evt.Date)
		if err != nil {
			continue
		}
		writeEvent(&ics, evt, day, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, evt *event.ExternalEvent, day, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	fmt.Fprintf(ics, "UID:%d@campusconnect\r\n", evt.ID)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp.Format("20060102T150405Z"))

	// All-day entry; the free-text time field survives in the description.
	fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", day.Format("20060102"))
	fmt.Fprintf(ics, "DTEND;VALUE=DATE:%s\r\n", day.AddDate(0, 0, 1).Format("20060102"))

	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(evt.Title))

	description := evt.Description
	if evt.Time != "" {
		description = fmt.Sprintf("Time: %s\n%s", evt.Time, description)
	}
	if evt.WeatherForecast != "" {
		description = fmt.Sprintf("%s\nForecast: %s", description, evt.WeatherForecast)
	}
	fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(description))

	if evt.Location != "" {
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(evt.Location))
	}
	if evt.URL != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", evt.URL)
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
