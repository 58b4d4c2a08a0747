package auth

import (
	"context"
	"errors"

	"github.com/go-oauth2/oauth2/v4"
	oautherrors "github.com/go-oauth2/oauth2/v4/errors"
	oauthmodels "github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

// GormClientStore serves OAuth clients from the oauth_clients table
type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

// GetByID returns the stored client, which verifies secrets against its bcrypt hash
func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, oautherrors.ErrInvalidClient
		}
		return nil, err
	}
	return &client, nil
}

// GormTokenStore persists issued tokens in the oauth_tokens table
type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	token := &models.OAuthToken{
		ClientID: info.GetClientID(),
		UserID:   info.GetUserID(),
		Scopes:   info.GetScope(),
	}
	if code := info.GetCode(); code != "" {
		token.Code = code
		token.ExpiresAt = info.GetCodeCreateAt().Add(info.GetCodeExpiresIn())
	} else {
		token.AccessToken = info.GetAccess()
		token.RefreshToken = info.GetRefresh()
		token.ExpiresAt = info.GetAccessCreateAt().Add(info.GetAccessExpiresIn())
	}
	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return s.removeBy(ctx, "code", code)
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.removeBy(ctx, "access_token", access)
}

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return s.removeBy(ctx, "refresh_token", refresh)
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	return s.getBy(ctx, "code", code)
}

func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	return s.getBy(ctx, "access_token", access)
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	return s.getBy(ctx, "refresh_token", refresh)
}

func (s *GormTokenStore) removeBy(ctx context.Context, column, value string) error {
	if value == "" {
		return nil
	}
	return s.db.WithContext(ctx).Where(column+" = ?", value).Delete(&models.OAuthToken{}).Error
}

// getBy returns nil without error when no token matches, like the library's own stores
func (s *GormTokenStore) getBy(ctx context.Context, column, value string) (oauth2.TokenInfo, error) {
	if value == "" {
		return nil, nil
	}
	var token models.OAuthToken
	if err := s.db.WithContext(ctx).Where(column+" = ?", value).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toTokenInfo(token), nil
}

func toTokenInfo(token models.OAuthToken) oauth2.TokenInfo {
	info := &oauthmodels.Token{
		ClientID: token.ClientID,
		UserID:   token.UserID,
		Scope:    token.Scopes,
		Code:     token.Code,
		Access:   token.AccessToken,
		Refresh:  token.RefreshToken,
	}
	if token.Code != "" {
		info.CodeCreateAt = token.CreatedAt
		info.CodeExpiresIn = token.ExpiresAt.Sub(token.CreatedAt)
	} else {
		info.AccessCreateAt = token.CreatedAt
		info.AccessExpiresIn = token.ExpiresAt.Sub(token.CreatedAt)
	}
	return info
}
