package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusconnect/campus-events/internal/config"
	"github.com/campusconnect/campus-events/internal/logger"
	"github.com/campusconnect/campus-events/internal/storage"
	"github.com/campusconnect/campus-events/internal/web"
)

func newServeCmd(cfg config.Config) *cobra.Command {
	var flagAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stored events and weather rows as web pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(dbPath(cmd))
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer store.Close()

			logger.Info("serving", logger.Fields{"addr": flagAddr})
			return web.New(store).Start(flagAddr)
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", cfg.ListenAddr, "Listen address")
	return cmd
}
