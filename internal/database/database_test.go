package database

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite enables foreign keys",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "pizza.sqlite"},
			expected: "pizza.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite appends to existing query",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "file:test.db?cache=shared"},
			expected: "file:test.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite keeps explicit foreign key setting",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "x.db?_foreign_keys=off"},
			expected: "x.db?_foreign_keys=off",
		},
		{
			name:     "postgres",
			cfg:      DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "pizza", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=pizza port=5432 sslmode=disable",
		},
		{
			name:     "mysql",
			cfg:      DatabaseConfig{Driver: "mysql", Host: "db", Port: "3306", User: "u", Password: "p", Name: "pizza"},
			expected: "u:p@tcp(db:3306)/pizza?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestPriceCheckConstraint(t *testing.T) {
	db := setupTestDB(t)
	_, err := Seed(context.Background(), db)
	require.NoError(t, err)

	var restaurant models.Restaurant
	require.NoError(t, db.First(&restaurant).Error)
	var pizza models.Pizza
	require.NoError(t, db.First(&pizza).Error)

	for _, price := range []float64{0.5, 30.5} {
		err := db.Create(&models.RestaurantPizza{Price: price, PizzaID: pizza.ID, RestaurantID: restaurant.ID}).Error
		assert.Error(t, err, "price %v must be rejected by the database", price)
	}

	err = db.Create(&models.RestaurantPizza{Price: 30, PizzaID: pizza.ID, RestaurantID: restaurant.ID}).Error
	assert.NoError(t, err)
}

func TestForeignKeyConstraint(t *testing.T) {
	db := setupTestDB(t)

	err := db.Create(&models.RestaurantPizza{Price: 10, PizzaID: 999, RestaurantID: 999}).Error

	assert.Error(t, err)
}

func TestUniqueRestaurantName(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.Restaurant{Name: "Sottocasa", Address: "Brooklyn"}).Error)
	err := db.Create(&models.Restaurant{Name: "Sottocasa", Address: "Harlem"}).Error

	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)

	result, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Restaurants: 2, Pizzas: 2, RestaurantPizzas: 3}, result)

	var associations []models.RestaurantPizza
	require.NoError(t, db.Order("id").Find(&associations).Error)
	require.Len(t, associations, 3)
	for _, rp := range associations {
		assert.NotZero(t, rp.PizzaID)
		assert.NotZero(t, rp.RestaurantID)
	}

	var pizza models.Pizza
	require.NoError(t, db.First(&pizza, associations[0].PizzaID).Error)
	assert.Equal(t, "Cheese", pizza.Name)
	assert.False(t, pizza.CreatedAt.IsZero())

	// the second run violates the unique restaurant name and rolls back entirely
	_, err = Seed(context.Background(), db)
	assert.Error(t, err)
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestSeedIfEmpty(t *testing.T) {
	db := setupTestDB(t)

	seeded, err := SeedIfEmpty(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedIfEmpty(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, seeded)
}
