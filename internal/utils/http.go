package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// WriteJSON writes data as the JSON body of a response with the given
// status. A value that cannot be encoded turns into a plain 500 and the
// encoding error is returned; nothing else has been written at that point.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteError writes the `{"error": message}` body used by every API
// endpoint.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, errorBody{Error: message}, statusCode)
}

type errorBody struct {
	Error string `json:"error"`
}
