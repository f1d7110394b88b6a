// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-news-chat/internal/utils"
)

const notFoundMessage = "Not found"

// notFound answers unknown paths and unsupported methods alike, so a wrong
// method on a chat route looks the same as a route that does not exist.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, notFoundMessage, http.StatusNotFound)
}
