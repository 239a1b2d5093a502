package main

import (
	"log/slog"
	"os"

	"restaurant/cmd"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/seed"

	"github.com/go-faster/errors"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var (
		reset       bool
		catalogPath string
	)

	command := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample menu and orders",
		Long: "Creates the sample menu items and orders through the regular command handlers.\n" +
			"Database settings are read from RESTAURANT_DB_* variables, .env or config.yaml.",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			cfg, err := cmd.LoadConfig(nil)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(c.OutOrStdout(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

			db, err := gorm.Open(pgdriver.Open(cfg.DB.DSN()), &gorm.Config{TranslateError: true})
			if err != nil {
				return errors.Wrap(err, "open database")
			}
			if err = postgres.Migrate(db); err != nil {
				return errors.Wrap(err, "migrate")
			}
			if reset {
				if err = postgres.Truncate(db); err != nil {
					return errors.Wrap(err, "truncate")
				}
				logger.Info("Cleared existing data")
			}

			root := cmd.NewCompositionRoot(cfg, db, logger)
			seeder := seed.NewSeeder(
				root.CreateCreateMenuItemCommandHandler(),
				root.CreateCreateOrderCommandHandler(),
				root.CreateChangeOrderStatusCommandHandler(),
				logger,
			)
			res, err := seeder.Run(c.Context(), catalog)
			if err != nil {
				return err
			}
			logger.Info("Seed complete", "menu_items", res.MenuItems, "orders", res.Orders)
			return nil
		},
	}

	command.Flags().BoolVar(&reset, "reset", false, "truncate menu items and orders before seeding")
	command.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog to load instead of the built-in sample")
	return command
}

func loadCatalog(path string) (seed.Catalog, error) {
	if path == "" {
		return seed.DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return seed.Catalog{}, errors.Wrap(err, "read catalog")
	}
	return seed.LoadCatalog(data)
}
