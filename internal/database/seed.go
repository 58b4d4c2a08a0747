package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedResult summarizes what Seed inserted
type SeedResult struct {
	Restaurants      int
	Pizzas           int
	RestaurantPizzas int
}

// Seed inserts the sample restaurants, pizzas and their prices in one transaction.
// Restaurants and pizzas are created first so the associations reference committed ids.
func Seed(ctx context.Context, db *gorm.DB) (SeedResult, error) {
	var result SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Dominion Pizza", Address: "Good Italian, Ngong Road, 5th Avenue"},
			{Name: "Pizza Hut", Address: "Westgate Mall, Mwanzi Road, Nrb 100"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seeding restaurants: %w", err)
		}

		pizzas := []models.Pizza{
			{Name: "Cheese", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Pepperoni", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seeding pizzas: %w", err)
		}

		restaurantPizzas := []models.RestaurantPizza{
			{Price: 10.99, PizzaID: pizzas[0].ID, RestaurantID: restaurants[0].ID},
			{Price: 12.99, PizzaID: pizzas[1].ID, RestaurantID: restaurants[0].ID},
			{Price: 11.99, PizzaID: pizzas[0].ID, RestaurantID: restaurants[1].ID},
		}
		if err := tx.Create(&restaurantPizzas).Error; err != nil {
			return fmt.Errorf("seeding restaurant pizzas: %w", err)
		}

		result = SeedResult{
			Restaurants:      len(restaurants),
			Pizzas:           len(pizzas),
			RestaurantPizzas: len(restaurantPizzas),
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	log.WithFields(logrus.Fields{
		"restaurants":       result.Restaurants,
		"pizzas":            result.Pizzas,
		"restaurant_pizzas": result.RestaurantPizzas,
	}).Info("Database seeded successfully")
	return result, nil
}

// SeedIfEmpty seeds only when no restaurant exists yet
func SeedIfEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	log.Info("Database is empty, seeding initial data")
	if _, err := Seed(ctx, db); err != nil {
		return false, err
	}
	return true, nil
}
