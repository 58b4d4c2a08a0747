package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles an OAuth client can hold
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// OAuthClient is a registered API client allowed to request access tokens.
// Secret holds a bcrypt hash, never the plain secret.
type OAuthClient struct {
	ID         string `gorm:"primaryKey"`
	Secret     string `gorm:"not null"`
	Name       string `gorm:"not null"`
	Domain     string
	Role       string `gorm:"not null;default:'user'"`
	Scopes     string // Space-separated list of allowed scopes
	GrantTypes string // Space-separated list, e.g. "client_credentials"
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

func (c *OAuthClient) GetID() string     { return c.ID }
func (c *OAuthClient) GetSecret() string { return c.Secret }
func (c *OAuthClient) GetDomain() string { return c.Domain }
func (c *OAuthClient) IsPublic() bool    { return false }
func (c *OAuthClient) GetUserID() string { return c.ID }

// VerifyPassword compares a plain secret against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}

// HashSecret replaces Secret with its bcrypt hash
func (c *OAuthClient) HashSecret() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Secret = string(hash)
	return nil
}
