// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the chat client and the development assistant server.
//
// Configuration is assembled from a .env file, the environment, flags and a
// JSON file, in that order. Later sources override earlier non-zero fields.
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the development server. Both fill defaults for
// missing values before validating.
package config
