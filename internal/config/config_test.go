package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "campusconnect.db" {
		t.Errorf("unexpected default db path %q", cfg.DBPath)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("unexpected default listen address %q", cfg.ListenAddr)
	}
	if cfg.Latitude == 0 || cfg.Longitude == 0 {
		t.Error("expected default campus coordinates")
	}
	if cfg.Timezone != "America/New_York" {
		t.Errorf("unexpected default timezone %q", cfg.Timezone)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CAMPUS_EVENTS_DB", "/tmp/test.db")
	t.Setenv("CAMPUS_EVENTS_LAT", "40.5")
	t.Setenv("CAMPUS_EVENTS_ACADEMIC_URL", "https://example.edu/calendar")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("expected env override, got %q", cfg.DBPath)
	}
	if cfg.Latitude != 40.5 {
		t.Errorf("expected latitude override, got %v", cfg.Latitude)
	}
	if cfg.AcademicURL != "https://example.edu/calendar" {
		t.Errorf("expected academic URL override, got %q", cfg.AcademicURL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CAMPUS_EVENTS_LAT", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed float")
	}
}
