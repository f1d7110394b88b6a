// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is the -a flag value. The host may be empty, "localhost" or
// an IP literal.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags in args into a fresh
// [StructuredConfig]. A dedicated [flag.FlagSet] is used so the function can
// be called repeatedly.
//
// Flags:
//
//	-u assistant API base URL (client)
//	-a listen address in format [host]:[port] (server)
//	-d database DSN (server)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-ttl idle session lifetime (server)
//	-janitor-interval idle session purge interval (server)
//	-log-file client log file path
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var sessionTTL time.Duration
	var janitorInterval time.Duration
	var logFile string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiURL, "u", "", "Assistant API base URL")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 1h)")
	fs.DurationVar(&janitorInterval, "janitor-interval", 0, "Idle session purge interval (e.g., 5m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			SessionTTL:      sessionTTL,
			JanitorInterval: janitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port %q: must be a number in range 1-65535", rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("host %q: incorrect IP-address provided", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
