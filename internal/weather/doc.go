// Package weather provides a client for the Open-Meteo daily forecast API.
// One lookup covers one calendar date; the verbatim response body is kept
// alongside the parsed fields so the stored row can be re-examined later.
package weather
