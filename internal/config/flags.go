// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags of both binaries.
//
// Flags:
//
//	-a relay listen address in format [host]:[port]
//	-d database DSN
//	-attachments-dir attachment directory
//	-kv sync-info store path
//	-c/-config json file path with configs
//	-master-password master password
//	-device-id device identifier
//	-log-dir client log directory
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-request-timeout relay call timeout (e.g., "30s")
//	-sync-interval incremental sync interval
//	-full-sync-interval reconcile interval
//	-server sync server URL
//	-username sync username
//	-token sync token
//	-issue-token print a relay token for the username and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, attachmentsDir, kvPath, jsonConfigPath string
	var masterPassword, deviceID, logDir string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var syncInterval, fullSyncInterval time.Duration
	var syncServer, syncUsername, syncToken string
	var issueToken string

	fs := flag.NewFlagSet("notes-sync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&attachmentsDir, "attachments-dir", "", "Attachment directory")
	fs.StringVar(&kvPath, "kv", "", "Sync info store path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterPassword, "master-password", "", "Master password")
	fs.StringVar(&deviceID, "device-id", "", "Device identifier")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Incremental sync interval")
	fs.DurationVar(&fullSyncInterval, "full-sync-interval", 0, "Reconcile interval")
	fs.StringVar(&syncServer, "server", "", "Sync server URL")
	fs.StringVar(&syncUsername, "username", "", "Sync username")
	fs.StringVar(&syncToken, "token", "", "Sync token")
	fs.StringVar(&issueToken, "issue-token", "", "Print a relay token for the username and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterPassword: masterPassword,
			DeviceID:       deviceID,
			LogDir:         logDir,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{AttachmentsDir: attachmentsDir},
			KV:    KV{Path: kvPath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{RequestTimeout: requestTimeout},
		Workers: Workers{
			SyncInterval:     syncInterval,
			FullSyncInterval: fullSyncInterval,
		},
		Sync: Sync{
			Server:   syncServer,
			Username: syncUsername,
			Token:    syncToken,
		},
		JSONFilePath:  jsonConfigPath,
		IssueTokenFor: issueToken,
		Args:          fs.Args(),
	}, nil
}

// String returns the host:port form, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". Hosts other than localhost must be IP addresses.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
