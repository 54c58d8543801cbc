// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// RelayConfig is the relay view of [StructuredConfig].
type RelayConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	// DSN selects PostgreSQL storage; empty means in-memory.
	DSN           string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
	// IssueTokenFor is set when the binary should only print a token.
	IssueTokenFor string
}

// GetRelayConfig loads the merged configuration and returns the validated
// relay view.
func GetRelayConfig() (*RelayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	relayCfg := NewRelayConfig(cfg)
	return relayCfg, relayCfg.validate()
}

// NewRelayConfig maps the relay-relevant fields of cfg.
func NewRelayConfig(cfg *StructuredConfig) *RelayConfig {
	return &RelayConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		Version:        cfg.App.Version,
		IssueTokenFor:  cfg.IssueTokenFor,
	}
}
