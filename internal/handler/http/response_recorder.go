// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-news-chat/models"
)

// maxRecordedErrorBody caps how much of an error body is kept for the access
// log. Every API error is a short `{"error": "..."}` document.
const maxRecordedErrorBody = 512

// responseRecorder wraps [http.ResponseWriter] to remember what the chat API
// answered: the status, the body size and, for failed requests, the `error`
// text of the body.
type responseRecorder struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int

	errorBody []byte
}

func (w *responseRecorder) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)
	w.size += n

	if w.status >= http.StatusBadRequest && len(w.errorBody) < maxRecordedErrorBody {
		room := maxRecordedErrorBody - len(w.errorBody)
		w.errorBody = append(w.errorBody, b[:min(n, room)]...)
	}
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusCode reports 200 for handlers that never wrote anything, which is
// what net/http sends in that case.
func (w *responseRecorder) statusCode() int {
	if !w.wroteHeader {
		return http.StatusOK
	}
	return w.status
}

// errorMessage returns the `error` field of a recorded error body, or an
// empty string when the body is not an API error document.
func (w *responseRecorder) errorMessage() string {
	if len(w.errorBody) == 0 {
		return ""
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(w.errorBody, &body); err != nil {
		return ""
	}
	return body.Error
}
