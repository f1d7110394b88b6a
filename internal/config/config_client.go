// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	// DefaultAPIURL is used when no API URL is configured. It matches the
	// address the development server listens on by default.
	DefaultAPIURL = "http://localhost:5000/api"

	// DefaultClientRequestTimeout bounds a single call to the assistant
	// service when no timeout is configured.
	DefaultClientRequestTimeout = 30 * time.Second

	defaultClientLogFile = "news-chat.log"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFile is the path the client logger appends to.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIURL is the base URL of the assistant service API.
	APIURL string
	// RequestTimeout is the timeout applied to every outbound request.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the assistant service URL and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if clientCfg.App.LogFile == "" {
		clientCfg.App.LogFile = defaultClientLogFile
	}
	if clientCfg.Adapter.APIURL == "" {
		clientCfg.Adapter.APIURL = DefaultAPIURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return clientCfg
}
