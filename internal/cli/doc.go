// Package cli implements the campus-events command tree. Each subcommand
// is a one-shot batch run: scrape pulls the calendars into the database,
// weather enriches stored events with forecasts, and serve renders the
// stored rows over HTTP. Batch failures are logged and the run continues
// with the next unit of work; nothing is silently dropped.
package cli
