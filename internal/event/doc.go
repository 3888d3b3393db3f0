// Package event defines the records produced by the campus calendar scraper
// and the weather enrichment pass, along with best-effort date and time
// normalization. Dates that cannot be parsed are carried through as raw text
// rather than rejected.
package event
