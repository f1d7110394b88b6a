// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] carries no values that
// are invalid for every consumer. Missing values are fine here: each view
// fills its own defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}
	if cfg.Workers.SessionTTL < 0 || cfg.Workers.JanitorInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(cfg.Adapter.APIURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.App.LogFile) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionTTL <= 0 || cfg.Workers.JanitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
