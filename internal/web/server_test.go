package web

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/campusconnect/campus-events/internal/event"
	"github.com/campusconnect/campus-events/internal/storage"
)

func setupTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	store, err := storage.New(db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	s, _ := setupTestServer(t)

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/events") {
		t.Error("index should point at /events")
	}
}

func TestEventsPage(t *testing.T) {
	s, store := setupTestServer(t)

	_, err := store.InsertEvent(&event.ExternalEvent{
		Title:       "Christmas Concert",
		Date:        "2025-12-02",
		Time:        "7:30 pm",
		Location:    "Abbey Basilica",
		Description: "Annual concert",
		Source:      event.SourceAcademic,
		URL:         "https://academic.test/calendar",
	})
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}

	rec := get(t, s, "/events")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Christmas Concert") {
		t.Error("events page should contain the stored title")
	}
	if !strings.Contains(body, "2025-12-02") {
		t.Error("events page should contain the stored date")
	}
}

func TestEventsPageEmpty(t *testing.T) {
	s, _ := setupTestServer(t)

	rec := get(t, s, "/events")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No events stored yet") {
		t.Error("empty store should render the placeholder text")
	}
}

func TestAPIDataPage(t *testing.T) {
	s, store := setupTestServer(t)

	eventID, err := store.InsertEvent(&event.ExternalEvent{
		Title: "Volleyball vs Barton",
		Date:  "2025-12-06",
	})
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}

	tempMax := 58.1
	_, err = store.InsertAPIData(&event.APIData{
		Date:        "2025-12-06",
		Provider:    "open-meteo",
		TempMax:     &tempMax,
		WeatherCode: 0,
		WeatherText: "Clear",
		RawJSON:     "{}",
	}, &eventID)
	if err != nil {
		t.Fatalf("insert api data: %v", err)
	}

	rec := get(t, s, "/api")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Volleyball vs Barton") {
		t.Error("api page should show the joined event title")
	}
	if !strings.Contains(body, "58.1") {
		t.Error("api page should show the high temperature")
	}
	if !strings.Contains(body, "Clear") {
		t.Error("api page should show the conditions text")
	}
}

func TestCalendarFeed(t *testing.T) {
	s, store := setupTestServer(t)

	_, err := store.InsertEvent(&event.ExternalEvent{
		Title: "Advising Day",
		Date:  "2025-11-04",
	})
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}

	rec := get(t, s, "/events.ics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("expected a text/calendar content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "SUMMARY:Advising Day") {
		t.Error("feed should contain the stored event")
	}
}
