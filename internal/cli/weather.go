package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusconnect/campus-events/internal/config"
	"github.com/campusconnect/campus-events/internal/event"
	"github.com/campusconnect/campus-events/internal/logger"
	"github.com/campusconnect/campus-events/internal/storage"
	"github.com/campusconnect/campus-events/internal/weather"
)

func newWeatherCmd(cfg config.Config) *cobra.Command {
	var (
		flagLat float64
		flagLon float64
		flagTZ  string
	)

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Fetch forecasts for stored event dates and record them",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(dbPath(cmd))
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer store.Close()

			client := weather.NewClient(flagLat, flagLon, flagTZ)
			return runWeather(cmd.Context(), client, store)
		},
	}

	cmd.Flags().Float64Var(&flagLat, "lat", cfg.Latitude, "Forecast latitude")
	cmd.Flags().Float64Var(&flagLon, "lon", cfg.Longitude, "Forecast longitude")
	cmd.Flags().StringVar(&flagTZ, "timezone", cfg.Timezone, "Forecast timezone")
	return cmd
}

// forecastClient is the slice of the weather client the batch needs.
type forecastClient interface {
	FetchDaily(ctx context.Context, date string) (*weather.Forecast, error)
}

// weatherStore is the slice of the gateway the weather batch needs.
type weatherStore interface {
	EventDates() ([]storage.EventDate, error)
	InsertAPIData(rec *event.APIData, eventID *int64) (int64, error)
	SetEventForecast(id int64, forecast string) error
}

// runWeather looks up one forecast per distinct event date and writes one
// api_data row per event on that date, denormalizing a short summary onto
// the event itself. Dates whose value fell back to raw text are skipped;
// fetch and insert failures are logged and the batch continues.
func runWeather(ctx context.Context, client forecastClient, store weatherStore) error {
	dates, err := store.EventDates()
	if err != nil {
		return fmt.Errorf("listing event dates: %w", err)
	}
	if len(dates) == 0 {
		logger.Info("no event dates to enrich", nil)
		return nil
	}

	inserted := 0
	for _, d := range dates {
		if !event.IsISODate(d.Date) {
			logger.Warn("skipping unparsed event date", logger.Fields{"date": d.Date})
			continue
		}

		forecast, err := client.FetchDaily(ctx, d.Date)
		if err != nil {
			logger.Error("forecast fetch failed", logger.Fields{"date": d.Date}, err)
			continue
		}

		for _, eventID := range d.EventIDs {
			rec := &event.APIData{
				Date:        forecast.Date,
				Provider:    forecast.Provider,
				TempMax:     forecast.TempMax,
				TempMin:     forecast.TempMin,
				WeatherCode: forecast.WeatherCode,
				WeatherText: forecast.WeatherText,
				RawJSON:     forecast.RawJSON,
			}
			if _, err := store.InsertAPIData(rec, &eventID); err != nil {
				logger.Error("api data insert failed", logger.Fields{
					"date":     d.Date,
					"event_id": eventID,
				}, err)
				continue
			}
			if err := store.SetEventForecast(eventID, forecast.Summary()); err != nil {
				logger.Error("forecast update failed", logger.Fields{
					"event_id": eventID,
				}, err)
			}
			inserted++
		}
	}

	logger.Info("weather enrichment complete", logger.Fields{
		"dates":    len(dates),
		"inserted": inserted,
	})
	return nil
}
