package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestRunSeed(t *testing.T) {
	db := setupTestDB(t)
	var out bytes.Buffer

	require.NoError(t, runSeed(context.Background(), db, false, &out))
	assert.Equal(t, "Seeded 2 restaurants, 2 pizzas and 3 restaurant pizzas\n", out.String())

	out.Reset()
	require.NoError(t, runSeed(context.Background(), db, true, &out))
	assert.Contains(t, out.String(), "nothing seeded")

	// a second full seed violates the unique restaurant names and rolls back
	assert.Error(t, runSeed(context.Background(), db, false, &out))
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCreateClient(t *testing.T) {
	db := setupTestDB(t)
	var out bytes.Buffer

	err := createClient(context.Background(), db, clientOptions{role: models.RoleAdmin, secret: "dev-secret-123", scopes: "read write"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Client ID: admin-client")
	assert.Contains(t, out.String(), "Client Secret: dev-secret-123")

	var stored models.OAuthClient
	require.NoError(t, db.First(&stored, "id = ?", "admin-client").Error)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.NotEqual(t, "dev-secret-123", stored.Secret)
	assert.True(t, stored.VerifyPassword("dev-secret-123"))

	out.Reset()
	require.NoError(t, createClient(context.Background(), db, clientOptions{role: models.RoleAdmin}, &out))
	assert.Contains(t, out.String(), "already exists")
}

func TestCreateClientCommandRejectsUnknownRole(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"create-client", "--role", "root"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.ErrorContains(t, err, "invalid role")
}
