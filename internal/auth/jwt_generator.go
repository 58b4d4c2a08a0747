package auth

import (
	"context"
	"fmt"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

// JWTAccessGenerate generates JWT access tokens carrying the client's role
type JWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
}

// NewJWTAccessGenerate creates a new JWT access token generator
func NewJWTAccessGenerate(key []byte, method jwt.SigningMethod) *JWTAccessGenerate {
	return &JWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
	}
}

// Token generates a JWT access token with custom claims
// This method is called by the OAuth2 library to generate access tokens
func (g *JWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	clientID := data.Client.GetID()
	if clientID == "" {
		return "", "", fmt.Errorf("cannot generate token: no client ID available")
	}

	createAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"sub":  clientID,
		"aud":  clientID,
		"iat":  createAt.Unix(),
		"exp":  createAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
		"role": clientRole(data.Client),
	}
	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims["scope"] = scope
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"sub": clientID,
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		refresh, err = jwt.NewWithClaims(g.SignedMethod, refreshClaims).SignedString(g.SignedKey)
		if err != nil {
			return "", "", err
		}
	}

	return access, refresh, nil
}

// clientRole reads the role stored on the client; unknown client types get the least privilege
func clientRole(client oauth2.ClientInfo) string {
	if c, ok := client.(*models.OAuthClient); ok && c.Role != "" {
		return c.Role
	}
	return models.RoleUser
}
