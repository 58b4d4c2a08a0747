package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceInRange(t *testing.T) {
	testCases := []struct {
		price    float64
		expected bool
	}{
		{0.99, false},
		{1, true},
		{10.99, true},
		{30, true},
		{30.01, false},
		{-5, false},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.expected, PriceInRange(tt.price), "price %v", tt.price)
	}
}

func TestOAuthClientSecretHashing(t *testing.T) {
	client := &OAuthClient{ID: "client", Secret: "plain-secret"}

	require.NoError(t, client.HashSecret())

	assert.NotEqual(t, "plain-secret", client.Secret)
	assert.True(t, client.VerifyPassword("plain-secret"))
	assert.False(t, client.VerifyPassword("wrong-secret"))
	assert.Equal(t, "client", client.GetUserID())
	assert.False(t, client.IsPublic())
}

func TestNewValidationErrorResponseNeverNil(t *testing.T) {
	assert.NotNil(t, NewValidationErrorResponse().Errors)
	assert.Equal(t, []string{"a", "b"}, NewValidationErrorResponse("a", "b").Errors)
}
