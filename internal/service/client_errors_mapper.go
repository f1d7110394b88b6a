// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-news-chat/internal/adapter"
)

// chatErrorMessage picks the text shown to the user for a failed chat turn:
// the message the server put into the `error` field, or a generic one.
func chatErrorMessage(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}

	return MsgChatFailed
}
