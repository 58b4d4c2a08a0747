package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
)

func newSeedCmd(flags *dbFlags) *cobra.Command {
	var onlyIfEmpty bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample restaurants, pizzas and prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := flags.open()
			if err != nil {
				return err
			}
			defer database.Close(db)
			return runSeed(cmd.Context(), db, onlyIfEmpty, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&onlyIfEmpty, "if-empty", false, "skip seeding when restaurants already exist")
	return cmd
}

func runSeed(ctx context.Context, db *gorm.DB, onlyIfEmpty bool, out io.Writer) error {
	if onlyIfEmpty {
		seeded, err := database.SeedIfEmpty(ctx, db)
		if err != nil {
			return err
		}
		if !seeded {
			fmt.Fprintln(out, "Database already contains restaurants, nothing seeded")
			return nil
		}
		fmt.Fprintln(out, "Database seeded")
		return nil
	}

	result, err := database.Seed(ctx, db)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	fmt.Fprintf(out, "Seeded %d restaurants, %d pizzas and %d restaurant pizzas\n",
		result.Restaurants, result.Pizzas, result.RestaurantPizzas)
	return nil
}
