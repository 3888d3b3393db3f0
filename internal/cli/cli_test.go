package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/campusconnect/campus-events/internal/config"
	"github.com/campusconnect/campus-events/internal/event"
	"github.com/campusconnect/campus-events/internal/scraper"
	"github.com/campusconnect/campus-events/internal/storage"
	"github.com/campusconnect/campus-events/internal/weather"
)

type fakeEventStore struct {
	events  []*event.ExternalEvent
	failing bool
}

func (f *fakeEventStore) InsertEvent(ev *event.ExternalEvent) (int64, error) {
	if f.failing {
		return 0, errors.New("disk full")
	}
	f.events = append(f.events, ev)
	return int64(len(f.events)), nil
}

func calendarTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	academic, err := os.ReadFile("../../testdata/fixtures/academic_calendar.html")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}
	athletics, err := os.ReadFile("../../testdata/fixtures/athletics_calendar.html")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/academic":
			w.Write(academic)
		case "/athletics":
			w.Write(athletics)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunScrape(t *testing.T) {
	srv := calendarTestServer(t)
	sc := scraper.New(srv.URL+"/academic", srv.URL+"/athletics")
	store := &fakeEventStore{}

	if err := runScrape(context.Background(), sc, store); err != nil {
		t.Fatalf("runScrape failed: %v", err)
	}

	// 4 academic + 3 athletics blocks in the fixtures.
	if len(store.events) != 7 {
		for _, ev := range store.events {
			t.Logf("stored: [%s] %q", ev.Source, ev.Title)
		}
		t.Fatalf("expected 7 stored events, got %d", len(store.events))
	}
}

func TestRunScrapeContinuesPastFailedSource(t *testing.T) {
	srv := calendarTestServer(t)
	// Academic URL 404s; athletics still succeeds.
	sc := scraper.New(srv.URL+"/missing", srv.URL+"/athletics")
	store := &fakeEventStore{}

	if err := runScrape(context.Background(), sc, store); err != nil {
		t.Fatalf("expected partial success, got %v", err)
	}
	if len(store.events) != 3 {
		t.Fatalf("expected 3 athletics events, got %d", len(store.events))
	}
}

func TestRunScrapeContinuesPastFailedInsert(t *testing.T) {
	srv := calendarTestServer(t)
	sc := scraper.New(srv.URL+"/academic", srv.URL+"/athletics")

	// Every insert fails; the batch logs and keeps going.
	if err := runScrape(context.Background(), sc, &fakeEventStore{failing: true}); err != nil {
		t.Fatalf("insert failures should not abort the batch: %v", err)
	}
}

func TestRunScrapeAllSourcesFail(t *testing.T) {
	srv := calendarTestServer(t)
	sc := scraper.New(srv.URL+"/missing", srv.URL+"/also-missing")

	if err := runScrape(context.Background(), sc, &fakeEventStore{}); err == nil {
		t.Fatal("expected an error when every source fails")
	}
}

type fakeForecastClient struct {
	forecast *weather.Forecast
	err      error
	calls    int
}

func (f *fakeForecastClient) FetchDaily(ctx context.Context, date string) (*weather.Forecast, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	fc := *f.forecast
	fc.Date = date
	return &fc, nil
}

type fakeWeatherStore struct {
	dates     []storage.EventDate
	records   []*event.APIData
	linkedIDs []int64
	forecasts map[int64]string
}

func (f *fakeWeatherStore) EventDates() ([]storage.EventDate, error) {
	return f.dates, nil
}

func (f *fakeWeatherStore) InsertAPIData(rec *event.APIData, eventID *int64) (int64, error) {
	f.records = append(f.records, rec)
	if eventID != nil {
		f.linkedIDs = append(f.linkedIDs, *eventID)
	}
	return int64(len(f.records)), nil
}

func (f *fakeWeatherStore) SetEventForecast(id int64, forecast string) error {
	if f.forecasts == nil {
		f.forecasts = make(map[int64]string)
	}
	f.forecasts[id] = forecast
	return nil
}

func TestRunWeather(t *testing.T) {
	tempMax := 58.1
	client := &fakeForecastClient{
		forecast: &weather.Forecast{
			Provider:    weather.Provider,
			TempMax:     &tempMax,
			WeatherCode: 0,
			WeatherText: "Clear",
			RawJSON:     "{}",
		},
	}
	store := &fakeWeatherStore{
		dates: []storage.EventDate{
			{Date: "2025-12-02", EventIDs: []int64{1, 3}},
			{Date: "Fall Break", EventIDs: []int64{2}}, // raw fallback, skipped
			{Date: "2025-12-05", EventIDs: []int64{4}},
		},
	}

	if err := runWeather(context.Background(), client, store); err != nil {
		t.Fatalf("runWeather failed: %v", err)
	}

	// One fetch per parseable date, one row per event on that date.
	if client.calls != 2 {
		t.Errorf("expected 2 forecast fetches, got %d", client.calls)
	}
	if len(store.records) != 3 {
		t.Fatalf("expected 3 api_data rows, got %d", len(store.records))
	}
	if got := store.linkedIDs; len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 4 {
		t.Errorf("unexpected linked event ids: %v", got)
	}
	if store.forecasts[1] != "58°F, Clear" {
		t.Errorf("unexpected denormalized forecast %q", store.forecasts[1])
	}
	for _, rec := range store.records {
		if rec.Provider != weather.Provider {
			t.Errorf("unexpected provider %q", rec.Provider)
		}
	}
}

func TestRunWeatherContinuesPastFetchFailure(t *testing.T) {
	client := &fakeForecastClient{err: errors.New("upstream down")}
	store := &fakeWeatherStore{
		dates: []storage.EventDate{{Date: "2025-12-02", EventIDs: []int64{1}}},
	}

	if err := runWeather(context.Background(), client, store); err != nil {
		t.Fatalf("fetch failures should not abort the batch: %v", err)
	}
	if len(store.records) != 0 {
		t.Errorf("expected no rows after a failed fetch, got %d", len(store.records))
	}
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd(config.Config{DBPath: "test.db", ListenAddr: ":0"})

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"scrape", "weather", "serve"} {
		if !names[want] {
			t.Errorf("missing %q subcommand", want)
		}
	}
	if root.PersistentFlags().Lookup("db") == nil {
		t.Error("missing persistent --db flag")
	}
}
