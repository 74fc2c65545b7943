// Package services contains the business logic of the development API
// server. This file implements UserService: registration, login, logout and
// issuing access tokens from server-stored refresh tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/server/auth"
	"github.com/dmitrijs2005/moneyboy/internal/server/config"
	"github.com/dmitrijs2005/moneyboy/internal/server/models"
	"github.com/dmitrijs2005/moneyboy/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Registration holds the fields needed to create an account.
type Registration struct {
	UserName    string
	Password    string
	DisplayName string
	Email       string
}

type UserService struct {
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		bcryptCost:                   bcrypt.DefaultCost,
	}
}

// Register creates a user. Missing fields yield common.ErrorValidation,
// a taken username or email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, r Registration) (*models.User, error) {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(r.Email)
	r.DisplayName = strings.TrimSpace(r.DisplayName)

	switch {
	case r.UserName == "":
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	case r.Password == "":
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	case r.Email == "" || !strings.Contains(r.Email, "@"):
		return nil, fmt.Errorf("%w: a valid email is required", common.ErrorValidation)
	}
	if r.DisplayName == "" {
		r.DisplayName = r.UserName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := s.repomanager.Users().Create(ctx, &models.User{
		UserName:     r.UserName,
		DisplayName:  r.DisplayName,
		Email:        r.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password and, on success, returns a new TokenPair.
// Unknown users and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userName, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users().GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.generateTokenPair(ctx, user.ID)
}

// RefreshToken mints a new access token. The refresh token is not rotated.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	repo := s.repomanager.RefreshTokens()

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if token.Expired(time.Now()) {
		_ = repo.Delete(ctx, refreshToken)
		return "", common.ErrRefreshTokenExpired
	}

	access, err := s.generateAccessToken(token.UserID)
	if err != nil {
		return "", common.ErrorInternal
	}
	return access, nil
}

// Logout revokes all refresh tokens of userID. Access tokens already issued
// stay valid until they expire.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.repomanager.RefreshTokens().DeleteByUser(ctx, userID)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users().GetByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users().List(ctx)
}

// UserIDFromAccessToken verifies an access token issued by this service.
func (s *UserService) UserIDFromAccessToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens().Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
