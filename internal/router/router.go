package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/auth"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
)

// SetupRouter wires services, controllers and middleware over db and returns the gin engine
func SetupRouter(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	m := metrics.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		m.Middleware(),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.HealthCheck)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Mutating routes are open unless AUTH_ENABLED, in which case they need an admin token
	adminOnly := []gin.HandlerFunc{}
	if cfg.AuthEnabled {
		adminOnly = append(adminOnly,
			middleware.OAuth2Auth([]byte(cfg.JWTSecret)),
			middleware.RequireRole(models.RoleAdmin),
		)

		oauthService := auth.NewOAuthService(db, cfg.JWTSecret)
		router.POST("/oauth/token", oauthService.HandleToken)

		clientController := controllers.NewClientController(services.NewClientService(db))
		adminApi := router.Group("/admin", adminOnly...)
		{
			adminApi.POST("/clients", clientController.CreateClient)
			adminApi.GET("/clients", clientController.ListClients)
			adminApi.DELETE("/clients/:id", clientController.DeleteClient)
		}
	}

	router.GET("/restaurants", restaurantController.ListRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id/pizzas", withHandlers(adminOnly, restaurantController.DeleteRestaurant)...)

	router.GET("/pizzas", pizzaController.ListPizzas)

	router.GET("/restaurant_pizzas", restaurantPizzaController.ListRestaurantPizzas)
	router.POST("/restaurant_pizzas", withHandlers(adminOnly, restaurantPizzaController.CreateRestaurantPizza)...)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("Route not found"))
	})

	return router
}

func withHandlers(chain []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clone(chain), handler)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
