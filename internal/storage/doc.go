// Package storage is the persistence gateway for scraped events and weather
// lookups. It owns the two SQLite tables (external_events and api_data),
// applies the schema on open, and exposes single-row insert and ordered
// read-all operations. The api_data table holds a nullable reference to
// external_events: an association only, never ownership.
package storage
