// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It opens the first chat session, runs the terminal UI and releases the
// session when the process exits.
package client
