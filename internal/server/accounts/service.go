// Package accounts implements registration, login and profile updates for
// the data service.
package accounts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"context"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/auth"
	"github.com/dmitrijs2005/justdoit/internal/server/config"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/accounts"
)

// Token is an issued access token together with its expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// RegisterResult reports a completed registration. Token is nil when the
// account still has to be confirmed.
type RegisterResult struct {
	Account *models.Account
	Token   *Token
}

type Service struct {
	repo                 accounts.Repository
	secretKey            []byte
	tokenValidity        time.Duration
	confirmationRequired bool
}

func NewService(repo accounts.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                 repo,
		secretKey:            []byte(cfg.SecretKey),
		tokenValidity:        cfg.TokenValidityDuration,
		confirmationRequired: cfg.ConfirmationRequired,
	}
}

// Register creates a new account. When confirmation is disabled the account
// is usable immediately and a token is issued with it.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (*RegisterResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, common.ErrValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account, err := s.repo.Create(ctx, &models.Account{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Confirmed:    !s.confirmationRequired,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	result := &RegisterResult{Account: account}
	if account.Confirmed {
		token, err := s.issueToken(account)
		if err != nil {
			return nil, err
		}
		result.Token = token
	}
	return result, nil
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Account, *Token, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, common.ErrInternal
	}

	if err := auth.VerifyPassword(account.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, common.ErrInternal
	}

	if !account.Confirmed {
		return nil, nil, common.ErrUnconfirmedAccount
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, nil, err
	}
	return account, token, nil
}

// Get returns the account behind an authenticated token subject.
func (s *Service) Get(ctx context.Context, id string) (*models.Account, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile changes the display name and/or password. Nil fields are
// left untouched.
func (s *Service) UpdateProfile(ctx context.Context, id string, displayName, password *string) (*models.Account, error) {
	var passwordHash *string
	if password != nil {
		if *password == "" {
			return nil, common.ErrValidation
		}
		hash, err := auth.HashPassword(*password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		passwordHash = &hash
	}

	return s.repo.Update(ctx, id, displayName, passwordHash)
}

// VerifyToken parses an access token and returns the account id and expiry.
func (s *Service) VerifyToken(tokenString string) (string, time.Time, error) {
	claims, err := auth.ParseToken(tokenString, s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return claims.AccountID, claims.ExpiresAt.Time, nil
}

func (s *Service) issueToken(account *models.Account) (*Token, error) {
	tokenString, expiresAt, err := auth.GenerateToken(account.ID, s.secretKey, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &Token{AccessToken: tokenString, ExpiresAt: expiresAt}, nil
}
