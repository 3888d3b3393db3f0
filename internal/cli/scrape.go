package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusconnect/campus-events/internal/config"
	"github.com/campusconnect/campus-events/internal/event"
	"github.com/campusconnect/campus-events/internal/logger"
	"github.com/campusconnect/campus-events/internal/scraper"
	"github.com/campusconnect/campus-events/internal/storage"
)

func newScrapeCmd(cfg config.Config) *cobra.Command {
	var (
		flagAcademicURL  string
		flagAthleticsURL string
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch both campus calendars and store the extracted events",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(dbPath(cmd))
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer store.Close()

			sc := scraper.New(flagAcademicURL, flagAthleticsURL)
			return runScrape(cmd.Context(), sc, store)
		},
	}

	cmd.Flags().StringVar(&flagAcademicURL, "academic-url", cfg.AcademicURL, "Academic calendar URL")
	cmd.Flags().StringVar(&flagAthleticsURL, "athletics-url", cfg.AthleticsURL, "Athletics calendar URL")
	return cmd
}

// eventStore is the slice of the gateway the scrape batch needs.
type eventStore interface {
	InsertEvent(ev *event.ExternalEvent) (int64, error)
}

// runScrape fetches each calendar in turn and inserts what it finds. A
// failed fetch or insert is logged and the batch moves on; the run only
// fails as a whole when every source failed.
func runScrape(ctx context.Context, sc *scraper.Scraper, store eventStore) error {
	sources := []struct {
		name  string
		url   string
		fetch func(context.Context) ([]*event.ExternalEvent, error)
	}{
		{event.SourceAcademic, sc.AcademicURL(), sc.FetchAcademicEvents},
		{event.SourceAthletics, sc.AthleticsURL(), sc.FetchAthleticsEvents},
	}

	failed := 0
	total := 0
	for _, src := range sources {
		events, err := src.fetch(ctx)
		if err != nil {
			logger.Error("calendar fetch failed", logger.Fields{
				"source": src.name,
				"url":    src.url,
			}, err)
			failed++
			continue
		}

		inserted := 0
		for _, ev := range events {
			if _, err := store.InsertEvent(ev); err != nil {
				logger.Error("event insert failed", logger.Fields{
					"source": src.name,
					"title":  ev.Title,
				}, err)
				continue
			}
			inserted++
		}
		total += inserted
		logger.Info("calendar scraped", logger.Fields{
			"source":   src.name,
			"found":    len(events),
			"inserted": inserted,
		})
	}

	if failed == len(sources) {
		return fmt.Errorf("all %d calendar sources failed", failed)
	}
	logger.Info("scrape complete", logger.Fields{"inserted": total})
	return nil
}
