package auth

import (
	"context"
	"testing"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

const testSecret = "test-jwt-secret-key-32-characters"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.OAuthClient{}, &models.OAuthToken{})
	require.NoError(t, err)

	return db
}

func createClient(t *testing.T, db *gorm.DB, id, secret, role string) *models.OAuthClient {
	client := &models.OAuthClient{
		ID:         id,
		Secret:     secret,
		Name:       "Test " + role,
		Domain:     "http://localhost",
		Role:       role,
		Scopes:     "read write",
		GrantTypes: "client_credentials",
	}
	require.NoError(t, client.HashSecret())
	require.NoError(t, db.Create(client).Error)
	return client
}

func TestOAuthServerInitialization(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, testSecret)
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestJWTTokenGeneration(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	createClient(t, db, "test_client", "test_secret", models.RoleAdmin)

	tokenInfo, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "test_client",
		ClientSecret: "test_secret",
		Scope:        "read",
	})
	require.NoError(t, err)
	require.NotNil(t, tokenInfo)

	parsed, err := jwt.Parse(tokenInfo.GetAccess(), func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "test_client", claims["sub"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, "read", claims["scope"])

	// the token was persisted and can be loaded back
	stored, err := NewGormTokenStore(db).GetByAccess(context.Background(), tokenInfo.GetAccess())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "test_client", stored.GetClientID())
}

func TestJWTTokenGenerationWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	createClient(t, db, "test_client", "test_secret", models.RoleAdmin)

	_, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "test_client",
		ClientSecret: "wrong",
	})
	assert.Error(t, err)
}

func TestClientStoreIntegration(t *testing.T) {
	db := setupTestDB(t)
	createClient(t, db, "integration_test_client", "integration_test_secret", models.RoleUser)

	clientStore := NewGormClientStore(db)
	ctx := context.Background()

	retrievedClient, err := clientStore.GetByID(ctx, "integration_test_client")
	require.NoError(t, err)
	assert.Equal(t, "integration_test_client", retrievedClient.GetID())

	_, err = clientStore.GetByID(ctx, "missing")
	assert.Error(t, err)
}

func TestTokenStoreRemove(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormTokenStore(db)
	ctx := context.Background()

	info, err := NewOAuthService(db, testSecret).GetServer().Manager.GenerateAccessToken(ctx, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     createClient(t, db, "c", "s", models.RoleUser).ID,
		ClientSecret: "s",
	})
	require.NoError(t, err)

	require.NoError(t, store.RemoveByAccess(ctx, info.GetAccess()))

	stored, err := store.GetByAccess(ctx, info.GetAccess())
	assert.NoError(t, err)
	assert.Nil(t, stored)
}
