// Package scraper provides HTTP fetching and HTML parsing for the campus
// calendars. It fetches the public academic calendar and the athletics
// calendar, extracts candidate event blocks, and normalizes their text into
// event records. Pages with no recognizable event blocks yield an empty
// result, not an error.
package scraper
