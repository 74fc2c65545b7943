// Package services contains application services for the moneyboy client.
// This file defines the session service: login, logout, registration, and
// the current user profile with its offline cache.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/moneyboy/internal/client/client"
	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/dmitrijs2005/moneyboy/internal/client/repositories/secrets"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

const (
	loginPath    = "auth/login"
	logoutPath   = "auth/logout"
	registerPath = "auth/register"
	profilePath  = "users/profile"
	usersPath    = "/users"
)

// SessionService defines session operations for the CLI.
//
// Contract:
//   - Login: validate input, exchange credentials for tokens and store them.
//   - Logout: best-effort server logout, then always wipe local session data.
//   - Register: create a new account on the server.
//   - GetUser: fetch the profile; a nil profile means "no authenticated user".
//   - GetUsers: list users known to the server.
//   - SessionStatus: inspect stored credentials without any network call.
type SessionService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context)
	Register(ctx context.Context, r models.Registration) error
	GetUser(ctx context.Context) (*models.UserProfile, error)
	GetUsers(ctx context.Context) ([]models.UserInfo, error)
	SessionStatus(ctx context.Context) (*models.SessionStatus, error)
}

type sessionService struct {
	transport client.Transport
	store     secrets.Store
	logger    logging.Logger
}

func NewSessionService(transport client.Transport, store secrets.Store, logger logging.Logger) SessionService {
	return &sessionService{transport: transport, store: store, logger: logger.With("module", "session")}
}

// Login succeeds only on 201. A 401 maps to ErrInvalidCredentials, every
// other outcome to ErrInternal.
func (s *sessionService) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyCredentials
	}

	resp, err := s.transport.Request(ctx, loginPath, client.RequestOptions{
		Method: http.MethodPost,
		JSON:   models.Credentials{Username: username, Password: password},
	})
	if err != nil {
		s.logger.Warn(ctx, "login request failed", "error", err)
		return ErrInternal
	}

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	default:
		s.logger.Warn(ctx, "login rejected", "status", resp.StatusCode)
		return ErrInternal
	}

	var tokens models.Tokens
	if err := resp.DecodeJSON(&tokens); err != nil {
		s.logger.Error(ctx, "malformed login response", "error", err)
		return ErrInternal
	}

	if err := s.store.Set(ctx, client.AccessTokenKey, []byte(tokens.AccessToken)); err != nil {
		s.logger.Error(ctx, "failed to store access token", "error", err)
	}
	if err := s.store.Set(ctx, client.RefreshTokenKey, []byte(tokens.RefreshToken)); err != nil {
		s.logger.Error(ctx, "failed to store refresh token", "error", err)
	}

	return nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if _, err := s.transport.RequestWithAuth(ctx, logoutPath, client.RequestOptions{Method: http.MethodDelete}); err != nil {
		s.logger.Info(ctx, "logout request failed, clearing local session anyway", "error", err)
	}
	s.purge(ctx)
}

// purge removes every session key. Each removal is attempted independently.
func (s *sessionService) purge(ctx context.Context) {
	for _, key := range client.SessionKeys {
		if err := s.store.Remove(ctx, key); err != nil {
			s.logger.Error(ctx, "failed to remove session key", "key", key, "error", err)
		}
	}
}

type messageBody struct {
	Message *string `json:"message"`
}

func (s *sessionService) Register(ctx context.Context, r models.Registration) error {
	resp, err := s.transport.Request(ctx, registerPath, client.RequestOptions{
		Method: http.MethodPost,
		JSON:   r,
	})
	if err != nil {
		s.logger.Warn(ctx, "register request failed", "error", err)
		return &RegistrationError{Message: defaultRegistrationMessage}
	}
	if resp.StatusCode == http.StatusAccepted {
		return nil
	}

	regErr := &RegistrationError{Status: resp.StatusCode, Message: defaultRegistrationMessage}

	var body messageBody
	if err := resp.DecodeJSON(&body); err == nil && body.Message != nil {
		regErr.Message = *body.Message
	}
	return regErr
}

// GetUser returns the current profile and caches it. On 401 the local
// session is purged. Any other failure falls back to the cached profile,
// which is returned with Cached set.
func (s *sessionService) GetUser(ctx context.Context) (*models.UserProfile, error) {
	resp, err := s.transport.RequestWithAuth(ctx, profilePath, client.RequestOptions{})

	switch {
	case err == nil && resp.StatusCode == http.StatusOK:
		var p *models.UserProfile
		if derr := resp.DecodeJSON(&p); derr != nil {
			s.logger.Error(ctx, "malformed profile response", "error", derr)
			err = derr
			break
		}
		if p == nil {
			s.logger.Error(ctx, "profile response is null")
			err = ErrEmptyProfile
			break
		}
		if serr := s.store.Set(ctx, client.UserKey, resp.Body); serr != nil {
			s.logger.Error(ctx, "failed to cache profile", "error", serr)
		}
		return p, nil

	case err == nil && resp.StatusCode == http.StatusUnauthorized:
		s.purge(ctx)
		return nil, client.ErrUnauthorized

	case err == nil:
		err = unexpectedStatus("get profile", resp.StatusCode)
	}

	return s.cachedUser(ctx, err)
}

func (s *sessionService) cachedUser(ctx context.Context, cause error) (*models.UserProfile, error) {
	if !errors.Is(cause, client.ErrUnavailable) {
		cause = fmt.Errorf("%w: %w", client.ErrUnavailable, cause)
	}

	raw, err := s.store.Get(ctx, client.UserKey)
	if err != nil {
		s.logger.Error(ctx, "failed to read cached profile", "error", err)
		return nil, cause
	}
	if raw == nil {
		return nil, cause
	}

	var p *models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Error(ctx, "cached profile is corrupt", "error", err)
		return nil, cause
	}
	if p == nil {
		return nil, cause
	}

	s.logger.Debug(ctx, "serving cached profile", "cause", cause)
	p.Cached = true
	return p, nil
}

func (s *sessionService) GetUsers(ctx context.Context) ([]models.UserInfo, error) {
	resp, err := s.transport.RequestWithAuth(ctx, usersPath, client.RequestOptions{})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus("list users", resp.StatusCode)
	}

	var users []models.UserInfo
	if err := resp.DecodeJSON(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *sessionService) SessionStatus(ctx context.Context) (*models.SessionStatus, error) {
	vals, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	st := &models.SessionStatus{
		HasAccessToken:  len(vals[client.AccessTokenKey]) > 0,
		HasRefreshToken: len(vals[client.RefreshTokenKey]) > 0,
		HasCachedUser:   len(vals[client.UserKey]) > 0,
	}
	if !st.HasAccessToken {
		return st, nil
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(vals[client.AccessTokenKey]), claims); err != nil {
		s.logger.Debug(ctx, "access token is not a readable JWT", "error", err)
		return st, nil
	}

	st.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		st.ExpiresAt = claims.ExpiresAt.Time
	}
	return st, nil
}
