package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-news-chat/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.sentinel = ErrBadRequest
	case http.StatusNotFound:
		respErr.sentinel = ErrNotFound
	case http.StatusTooManyRequests:
		respErr.sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		respErr.sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		respErr.sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		respErr.sentinel = ErrServiceUnavailable
	default:
		respErr.sentinel = ErrUnexpectedStatus
	}

	return respErr
}

// errorMessage extracts the `error` field of a JSON error body. Anything
// else, such as a proxy's HTML error page, yields an empty message.
func errorMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}

	return strings.TrimSpace(errResp.Error)
}
