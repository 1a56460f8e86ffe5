package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/evcraddock/stay-finder/internal/logging"
	"github.com/evcraddock/stay-finder/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port    int
		devMode bool
		catalog string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long:  "Start an HTTP server for the listing page. Settings come from SF_* environment variables; flags override them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := web.LoadConfigFromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("dev") {
				cfg.DevMode = devMode
			}
			if cmd.Flags().Changed("catalog") {
				cfg.Catalog = catalog
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&devMode, "dev", false, "human-readable debug logging")
	cmd.Flags().StringVar(&catalog, "catalog", "", "catalog JSON file to import before serving")

	return cmd
}

func runServe(cfg web.Config) error {
	logging.Setup(cfg.DevMode)

	if cfg.Catalog != "" {
		n, err := importCatalog(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("importing %s: %w", cfg.Catalog, err)
		}
		slog.Info("catalog imported", "path", cfg.Catalog, "stays", n)
	}

	database, err := openCatalog()
	if err != nil {
		return fmt.Errorf("%w (run sf import or pass --catalog)", err)
	}
	defer closeDB(database)

	srv, err := web.NewServer(database, cfg)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(cfg.Port)
}
