// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks chat input before it reaches the services.
//
// Validation is kept out of the HTTP handlers so that the same rules apply to
// every transport and can be tested without a server.
package validators

import "context"

// Validator checks obj and returns the first rule it breaks. When fields are
// given, only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
