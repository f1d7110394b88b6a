// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	// DefaultServerAddress is the listen address of the development server.
	DefaultServerAddress = "localhost:5000"

	// DefaultServerRequestTimeout bounds a single inbound request.
	DefaultServerRequestTimeout = 30 * time.Second

	// DefaultSessionTTL is how long an idle session survives.
	DefaultSessionTTL = time.Hour

	// DefaultJanitorInterval is how often idle sessions are purged.
	DefaultJanitorInterval = 5 * time.Minute

	defaultServerVersion = "dev"
)

// ServerConfig is the configuration view of the development assistant
// server.
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
	Workers Workers
}

// GetServerConfig builds, fills defaults for, and validates the server
// configuration view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}

	if serverCfg.App.Version == "" {
		serverCfg.App.Version = defaultServerVersion
	}
	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if serverCfg.Workers.SessionTTL == 0 {
		serverCfg.Workers.SessionTTL = DefaultSessionTTL
	}
	if serverCfg.Workers.JanitorInterval == 0 {
		serverCfg.Workers.JanitorInterval = DefaultJanitorInterval
	}

	return serverCfg
}
