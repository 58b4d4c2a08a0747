package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
)

// dbFlags override the DB_* environment variables for a single invocation
type dbFlags struct {
	driver string
	path   string
}

func newRootCmd() *cobra.Command {
	flags := &dbFlags{}
	rootCmd := &cobra.Command{
		Use:           "pizzactl",
		Short:         "Administrative tasks for the pizza restaurants database",
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.driver, "driver", "", "database driver (sqlite, postgres, mysql); defaults to DB_DRIVER")
	rootCmd.PersistentFlags().StringVar(&flags.path, "db", "", "sqlite database path; defaults to DB_PATH")

	rootCmd.AddCommand(newSeedCmd(flags))
	rootCmd.AddCommand(newCreateClientCmd(flags))
	return rootCmd
}

// open connects to the configured database and migrates the schema
func (f *dbFlags) open() (*gorm.DB, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	dbConfig := conf.Database()
	if f.driver != "" {
		dbConfig.Driver = f.driver
	}
	if f.path != "" {
		dbConfig.Path = f.path
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}
