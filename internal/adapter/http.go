package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-news-chat/internal/config"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/utils"
	"github.com/MKhiriev/go-news-chat/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

type httpAssistantAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAssistantAdapter constructs the JSON over HTTP implementation of
// [AssistantAdapter]. It normalises and validates the base URL from
// adapterCfg.APIURL and applies adapterCfg.RequestTimeout to every request.
//
// Returns an error if adapterCfg.APIURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPAssistantAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AssistantAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	return &httpAssistantAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateSession implements [AssistantAdapter]. It sends POST {base}/sessions
// and returns the sessionId of the response. A 2xx answer without a session
// id is reported as [ErrEmptySessionID].
func (h *httpAssistantAdapter) CreateSession(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Post("/sessions")
	if err != nil {
		return "", fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created models.CreateSessionResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode create session response: %w", err)
	}
	if created.SessionID == "" {
		return "", ErrEmptySessionID
	}

	return created.SessionID, nil
}

// SendChat implements [AssistantAdapter]. It POSTs req to {base}/chat and
// decodes the assistant reply.
func (h *httpAssistantAdapter) SendChat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var chatResp models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &chatResp); err != nil {
		return models.ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}

	return chatResp, nil
}

// DeleteSession implements [AssistantAdapter]. It sends
// DELETE {base}/sessions/{sessionID}; the response body is not read.
func (h *httpAssistantAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	resp, err := h.request(ctx).
		SetPathParam("sessionID", sessionID).
		Delete("/sessions/{sessionID}")
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}

	return mapHTTPError(resp)
}

// request starts a request bound to ctx. The trace id carried by ctx is sent
// in the X-Trace-ID header; a fresh one is generated when ctx has none so
// every call can be found in the server log.
func (h *httpAssistantAdapter) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = uuid.NewString()
	}

	h.logger.Debug().Str("trace_id", traceID).Msg("assistant request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
}
