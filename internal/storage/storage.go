package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/campusconnect/campus-events/internal/event"
)

// Store wraps one SQLite connection. Callers open a Store per batch run and
// close it when the run finishes; the design assumes a single writer.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	store, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an existing connection and applies the schema. Tests use this
// with an in-memory database.
func New(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertEvent inserts one scraped event and returns its assigned id.
func (s *Store) InsertEvent(ev *event.ExternalEvent) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO external_events (title, date, time, location, description, source, url, weather_forecast)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Title, ev.Date, ev.Time, ev.Location, ev.Description, ev.Source, ev.URL, ev.WeatherForecast)
	if err != nil {
		return 0, fmt.Errorf("inserting event: %w", err)
	}
	return res.LastInsertId()
}

// InsertAPIData inserts one weather lookup and returns its assigned id.
// eventID may be nil; when set it is stored as-is, with no existence check
// beyond what the schema itself enforces.
func (s *Store) InsertAPIData(rec *event.APIData, eventID *int64) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO api_data (event_id, date, provider, temp_max, temp_min, weather_code, weather_text, raw_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		eventID, rec.Date, rec.Provider, rec.TempMax, rec.TempMin, rec.WeatherCode, rec.WeatherText, rec.RawJSON)
	if err != nil {
		return 0, fmt.Errorf("inserting api data: %w", err)
	}
	return res.LastInsertId()
}

// SetEventForecast fills in the denormalized forecast text on one event.
// The only mutation external_events rows see after insert.
func (s *Store) SetEventForecast(id int64, forecast string) error {
	_, err := s.db.Exec(`UPDATE external_events SET weather_forecast = ? WHERE id = ?`, forecast, id)
	if err != nil {
		return fmt.Errorf("updating forecast: %w", err)
	}
	return nil
}

// ListEvents returns all stored events in insertion order.
func (s *Store) ListEvents() ([]*event.ExternalEvent, error) {
	rows, err := s.db.Query(`SELECT id, title, date, time, location, description, source, url, weather_forecast
		FROM external_events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := make([]*event.ExternalEvent, 0)
	for rows.Next() {
		var ev event.ExternalEvent
		var url, forecast sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Date, &ev.Time, &ev.Location,
			&ev.Description, &ev.Source, &url, &forecast); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		ev.URL = url.String
		ev.WeatherForecast = forecast.String
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ListAPIData returns all stored weather rows in insertion order, each
// joined to its associated event's title when the reference resolves.
// Dangling references come back with an empty title, not an error.
func (s *Store) ListAPIData() ([]*event.APIData, error) {
	rows, err := s.db.Query(`SELECT a.id, a.event_id, a.date, a.provider, a.temp_max, a.temp_min,
			a.weather_code, a.weather_text, a.raw_json, e.title
		FROM api_data a
		LEFT JOIN external_events e ON e.id = a.event_id
		ORDER BY a.id`)
	if err != nil {
		return nil, fmt.Errorf("querying api data: %w", err)
	}
	defer rows.Close()

	records := make([]*event.APIData, 0)
	for rows.Next() {
		var rec event.APIData
		var eventID sql.NullInt64
		var tempMax, tempMin sql.NullFloat64
		var title sql.NullString
		if err := rows.Scan(&rec.ID, &eventID, &rec.Date, &rec.Provider, &tempMax, &tempMin,
			&rec.WeatherCode, &rec.WeatherText, &rec.RawJSON, &title); err != nil {
			return nil, fmt.Errorf("scanning api data: %w", err)
		}
		if eventID.Valid {
			rec.EventID = &eventID.Int64
		}
		if tempMax.Valid {
			rec.TempMax = &tempMax.Float64
		}
		if tempMin.Valid {
			rec.TempMin = &tempMin.Float64
		}
		rec.EventTitle = title.String
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// EventDate groups the ids of stored events sharing one date value.
type EventDate struct {
	Date     string
	EventIDs []int64
}

// EventDates returns the distinct non-empty event dates in first-seen
// order, each with the ids of the events on that date. Feeds the weather
// enrichment batch.
func (s *Store) EventDates() ([]EventDate, error) {
	rows, err := s.db.Query(`SELECT id, date FROM external_events WHERE date != '' ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying event dates: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	dates := make([]EventDate, 0)
	for rows.Next() {
		var id int64
		var date string
		if err := rows.Scan(&id, &date); err != nil {
			return nil, fmt.Errorf("scanning event date: %w", err)
		}
		i, ok := index[date]
		if !ok {
			i = len(dates)
			index[date] = i
			dates = append(dates, EventDate{Date: date})
		}
		dates[i].EventIDs = append(dates[i].EventIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}
