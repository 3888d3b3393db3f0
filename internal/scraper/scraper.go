package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/campusconnect/campus-events/internal/event"
)

const (
	AcademicCalendarURL  = "https://belmontabbeycollege.edu/academics/calendar/"
	AthleticsCalendarURL = "https://abbeyathletics.com/calendar"
	UserAgent            = "campus-events/1.0 (github.com/campusconnect/campus-events)"
	Timeout              = 30 * time.Second
)

// Scraper handles fetching and parsing the campus calendars.
type Scraper struct {
	client       *http.Client
	academicURL  string
	athleticsURL string
}

// New creates a new Scraper instance. Empty URLs fall back to the defaults.
func New(academicURL, athleticsURL string) *Scraper {
	if academicURL == "" {
		academicURL = AcademicCalendarURL
	}
	if athleticsURL == "" {
		athleticsURL = AthleticsCalendarURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		academicURL:  academicURL,
		athleticsURL: athleticsURL,
	}
}

// AcademicURL returns the configured academic calendar URL.
func (s *Scraper) AcademicURL() string { return s.academicURL }

// AthleticsURL returns the configured athletics calendar URL.
func (s *Scraper) AthleticsURL() string { return s.athleticsURL }

// FetchAcademicEvents fetches and parses the academic calendar page.
func (s *Scraper) FetchAcademicEvents(ctx context.Context) ([]*event.ExternalEvent, error) {
	body, err := s.fetch(ctx, s.academicURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return parseAcademic(body, s.academicURL)
}

// FetchAthleticsEvents fetches and parses the athletics calendar page.
func (s *Scraper) FetchAthleticsEvents(ctx context.Context) ([]*event.ExternalEvent, error) {
	body, err := s.fetch(ctx, s.athleticsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return parseAthletics(body, s.athleticsURL)
}

func (s *Scraper) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// parseAcademic extracts events from the academic calendar markup. Calendar
// entries are plain text blocks; a block counts as an event when it mentions
// a date or an "@ location" marker.
func parseAcademic(r io.Reader, sourceURL string) ([]*event.ExternalEvent, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	container := doc.Find("div.region-content").First()
	if container.Length() == 0 {
		container = doc.Find("#content").First()
	}
	if container.Length() == 0 {
		container = doc.Selection
	}

	events := make([]*event.ExternalEvent, 0)
	seen := make(map[string]bool)

	container.Find("p, li, div").Each(func(i int, sel *goquery.Selection) {
		// Nested wrappers repeat their children's text; only leaf blocks count.
		if sel.Find("p, li, div").Length() > 0 {
			return
		}
		txt := Clean(sel.Text())
		if txt == "" || seen[txt] {
			return
		}
		if !event.HasDateOrTime(txt) && !strings.Contains(txt, "@") {
			return
		}
		seen[txt] = true
		events = append(events, academicEvent(txt, sourceURL))
	})

	return events, nil
}

// academicEvent builds a record from one cleaned calendar line. Lines use
// "title @ location" when a location is listed.
func academicEvent(line, sourceURL string) *event.ExternalEvent {
	title, location := line, ""
	if i := strings.Index(line, "@"); i >= 0 {
		title = Clean(line[:i])
		location = Clean(line[i+1:])
	}
	return &event.ExternalEvent{
		Title:       title,
		Date:        event.NormalizeDate(event.ExtractDateText(line)),
		Time:        event.ExtractTime(line),
		Location:    location,
		Description: line,
		Source:      event.SourceAcademic,
		URL:         sourceURL,
	}
}

// parseAthletics extracts events from the athletics calendar markup.
// Schedule rows are anchors linking to game pages; when the anchor text is
// bare, the surrounding element usually carries the schedule line.
func parseAthletics(r io.Reader, sourceURL string) ([]*event.ExternalEvent, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	container := doc.Find("#calendar").First()
	if container.Length() == 0 {
		container = doc.Find("div.calendar").First()
	}
	if container.Length() == 0 {
		container = doc.Selection
	}

	events := make([]*event.ExternalEvent, 0)
	seen := make(map[string]bool)

	container.Find("a[href]").Each(func(i int, a *goquery.Selection) {
		line := Clean(a.Text())
		if line == "" || !event.HasDateOrTime(line) {
			parent := Clean(a.Parent().Text())
			// A schedule row is short; a whole month grid is not.
			if parent == "" || len(parent) > 160 || !event.HasDateOrTime(parent) {
				return
			}
			line = parent
		}
		if seen[line] {
			return
		}
		seen[line] = true
		href, _ := a.Attr("href")
		events = append(events, athleticsEvent(line, href, sourceURL))
	})

	// Anchor-free markup: fall back to scanning text blocks.
	if len(events) == 0 {
		container.Find("p, li, div").Each(func(i int, sel *goquery.Selection) {
			if sel.Find("p, li, div").Length() > 0 {
				return
			}
			txt := Clean(sel.Text())
			if txt == "" || seen[txt] || !event.HasDateOrTime(txt) {
				return
			}
			seen[txt] = true
			events = append(events, athleticsEvent(txt, "", sourceURL))
		})
	}

	return events, nil
}

func athleticsEvent(line, href, sourceURL string) *event.ExternalEvent {
	pageURL := sourceURL
	if href != "" {
		pageURL = resolveURL(sourceURL, href)
	}
	return &event.ExternalEvent{
		Title:       line,
		Date:        event.NormalizeDate(event.ExtractDateText(line)),
		Time:        event.ExtractTime(line),
		Description: line,
		Source:      event.SourceAthletics,
		URL:         pageURL,
	}
}

// resolveURL makes relative hrefs absolute against the page URL.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return base
	}
	return b.ResolveReference(h).String()
}
