package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// Validation messages returned by CreateRestaurantPizza
var (
	MsgUnknownPizza      = "pizza_id does not reference an existing pizza"
	MsgUnknownRestaurant = "restaurant_id does not reference an existing restaurant"
	MsgPriceOutOfRange   = fmt.Sprintf("price must be between %g and %g", models.MinPrice, models.MaxPrice)
	MsgNotPersisted      = "Validation errors"
)

// CreateRestaurantPizzaInput is the payload of a new restaurant pizza
type CreateRestaurantPizzaInput struct {
	PizzaID      int     `json:"pizza_id" example:"1"`
	RestaurantID int     `json:"restaurant_id" example:"1"`
	Price        float64 `json:"price" example:"10.99"`
}

// RestaurantPizzaFilter narrows ListRestaurantPizzas; zero fields are ignored
type RestaurantPizzaFilter struct {
	PizzaID      int
	RestaurantID int
}

// RestaurantPizzaService manages the prices restaurants charge for pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a price, returning the referenced pizza
	CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.Pizza, error)
	// ListRestaurantPizzas retrieves restaurant pizzas ordered by id
	ListRestaurantPizzas(ctx context.Context, filter RestaurantPizzaFilter) ([]models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var problems []string

		found, err := findPizza(tx, input.PizzaID)
		switch {
		case errors.Is(err, ErrPizzaNotFound):
			problems = append(problems, MsgUnknownPizza)
		case err != nil:
			return err
		default:
			pizza = found
		}

		if _, err := findRestaurant(tx, input.RestaurantID); errors.Is(err, ErrRestaurantNotFound) {
			problems = append(problems, MsgUnknownRestaurant)
		} else if err != nil {
			return err
		}

		if !models.PriceInRange(input.Price) {
			problems = append(problems, MsgPriceOutOfRange)
		}

		if len(problems) > 0 {
			return &ValidationError{Errors: problems}
		}

		restaurantPizza := models.RestaurantPizza{
			Price:        input.Price,
			PizzaID:      input.PizzaID,
			RestaurantID: input.RestaurantID,
		}
		if err := tx.Create(&restaurantPizza).Error; err != nil {
			return &ValidationError{Errors: []string{MsgNotPersisted}, Err: err}
		}
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *restaurantPizzaService) ListRestaurantPizzas(ctx context.Context, filter RestaurantPizzaFilter) ([]models.RestaurantPizza, error) {
	query := s.db.WithContext(ctx).Order("id")
	if filter.PizzaID != 0 {
		query = query.Where("pizza_id = ?", filter.PizzaID)
	}
	if filter.RestaurantID != 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}

	restaurantPizzas := []models.RestaurantPizza{}
	if err := query.Find(&restaurantPizzas).Error; err != nil {
		return nil, err
	}
	return restaurantPizzas, nil
}
