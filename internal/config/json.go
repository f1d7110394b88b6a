// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig is the shape of the JSON config file. Unknown keys are
// rejected so a misspelled setting does not silently fall back to its
// default.
type fileConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app"`

	Adapter struct {
		APIURL         string   `json:"api_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Workers struct {
		SessionTTL      Duration `json:"session_ttl"`
		JanitorInterval Duration `json:"janitor_interval"`
	} `json:"workers"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: fc.App.Version,
			LogFile: fc.App.LogFile,
		},
		Adapter: Adapter{
			APIURL:         fc.Adapter.APIURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Workers: Workers{
			SessionTTL:      time.Duration(fc.Workers.SessionTTL),
			JanitorInterval: time.Duration(fc.Workers.JanitorInterval),
		},
	}, nil
}

// Duration accepts either a Go duration string ("30s", "1h30m") or a number
// of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("invalid duration: %s", b)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
