// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// layer is the partial configuration read from one source.
type layer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder stacks layers in the order they are added. A later layer
// overrides the non-zero fields of earlier ones. Source errors are collected
// and reported together by build.
type configBuilder struct {
	layers []layer
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.layers = append(b.layers, layer{source: source, cfg: cfg})
	}
	return b
}

// withDotEnv reads variables from a dotenv file without touching the process
// environment. A missing file contributes nothing.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return b
	}
	if err != nil {
		return b.add(path, nil, err)
	}

	cfg := &StructuredConfig{}
	return b.add(path, cfg, parseEnv(cfg, vars))
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add("environment", cfg, parseEnv(cfg, nil))
}

func (b *configBuilder) withFlags(name string, args []string) *configBuilder {
	cfg, err := parseFlags(name, args)
	return b.add("flags", cfg, err)
}

// withJSON loads the file named by the last layer that sets a config path.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	return b.add(path, cfg, err)
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if p := b.layers[i].cfg.JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("load config: %w", errors.Join(b.errs...))
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s config: %w", l.source, err)
		}
	}

	return merged, merged.validate()
}
