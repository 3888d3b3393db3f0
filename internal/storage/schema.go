package storage

// schemaSQL is applied on every open; both statements are idempotent.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS external_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT,
    date TEXT,
    time TEXT,
    location TEXT,
    description TEXT,
    source TEXT,
    url TEXT,
    weather_forecast TEXT
);

CREATE TABLE IF NOT EXISTS api_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_id INTEGER,
    date TEXT,
    provider TEXT,
    temp_max REAL,
    temp_min REAL,
    weather_code INTEGER,
    weather_text TEXT,
    raw_json TEXT,
    FOREIGN KEY(event_id) REFERENCES external_events(id)
);
`
