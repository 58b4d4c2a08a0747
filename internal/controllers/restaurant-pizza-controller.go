package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizza prices
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant's menu at a price
	CreateRestaurantPizza(c *gin.Context)
	// ListRestaurantPizzas lists prices, optionally filtered by pizza or restaurant
	ListRestaurantPizzas(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant for a price between 1 and 30.
// @Description The response echoes the pizza, not the new restaurant pizza.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body services.CreateRestaurantPizzaInput true "Restaurant pizza"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input services.CreateRestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(models.MsgInvalidBody))
		return
	}

	pizza, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		entry := log.WithFields(logrus.Fields{
			"pizza_id":      input.PizzaID,
			"restaurant_id": input.RestaurantID,
			"price":         input.Price,
			"errors":        validationErr.Errors,
		})
		if validationErr.Err != nil {
			entry = entry.WithError(validationErr.Err)
		}
		entry.Warn("Restaurant pizza rejected")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validationErr.Errors...))
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to create restaurant pizza")
		return
	}
	ctx.JSON(http.StatusCreated, pizza)
}

// ListRestaurantPizzas godoc
// @Summary List restaurant pizzas
// @Description List the prices restaurants charge for pizzas
// @Tags restaurant_pizzas
// @Produce json
// @Param pizza_id query int false "Only prices of this pizza"
// @Param restaurant_id query int false "Only prices of this restaurant"
// @Success 200 {array} models.RestaurantPizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [get]
func (c *restaurantPizzaController) ListRestaurantPizzas(ctx *gin.Context) {
	var filter services.RestaurantPizzaFilter
	var problems []string
	if raw := ctx.Query("pizza_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, "pizza_id must be an integer")
		}
		filter.PizzaID = id
	}
	if raw := ctx.Query("restaurant_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, "restaurant_id must be an integer")
		}
		filter.RestaurantID = id
	}
	if len(problems) > 0 {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(problems...))
		return
	}

	restaurantPizzas, err := c.service.ListRestaurantPizzas(ctx.Request.Context(), filter)
	if err != nil {
		respondInternalError(ctx, err, "Failed to retrieve restaurant pizzas")
		return
	}
	ctx.JSON(http.StatusOK, restaurantPizzas)
}
