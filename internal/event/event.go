package event

// Source identifiers for scraped calendars.
const (
	SourceAcademic  = "academic_calendar"
	SourceAthletics = "athletics_calendar"
)

// ExternalEvent is one row scraped from a public campus calendar.
// Rows are immutable after insert except for WeatherForecast, which the
// weather enrichment pass fills in later.
type ExternalEvent struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"` // ISO YYYY-MM-DD when parseable, raw text otherwise
	Time            string `json:"time"` // free text, may be a range like "11:00 am - 12:00 pm"
	Location        string `json:"location"`
	Description     string `json:"description"`
	Source          string `json:"source"`
	URL             string `json:"url,omitempty"`
	WeatherForecast string `json:"weather_forecast,omitempty"`
}

// APIData is one stored weather lookup. EventID is an association only:
// nil is valid and common, and a dangling reference after an external
// delete is tolerated.
type APIData struct {
	ID          int64    `json:"id"`
	EventID     *int64   `json:"event_id,omitempty"`
	Date        string   `json:"date"`
	Provider    string   `json:"provider"`
	TempMax     *float64 `json:"temp_max,omitempty"`
	TempMin     *float64 `json:"temp_min,omitempty"`
	WeatherCode int      `json:"weather_code"`
	WeatherText string   `json:"weather_text"`
	RawJSON     string   `json:"raw_json"`

	// EventTitle is populated by joined reads, empty otherwise.
	EventTitle string `json:"event_title,omitempty"`
}
