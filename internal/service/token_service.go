// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
)

// tokenService signs and verifies HS256 relay tokens. All state is
// read-only after construction.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim; tokens from another issuer are
	// rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token stays valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewTokenService(signKey, issuer string, duration time.Duration, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  signKey,
		tokenIssuer:   issuer,
		tokenDuration: duration,
		logger:        logger,
	}
}

func (t *tokenService) IssueToken(username string) (models.Token, error) {
	if username == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(t.tokenIssuer, username, t.tokenDuration, t.tokenSignKey)
	if err != nil {
		t.logger.Err(err).Str("func", "tokenService.IssueToken").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("token issue failed: %w", err)
	}
	return token, nil
}

// ParseToken returns ErrTokenIsExpired for expired tokens and
// ErrInvalidToken for any other verification failure.
func (t *tokenService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(token, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "tokenService.ParseToken").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return parsed, nil
}
