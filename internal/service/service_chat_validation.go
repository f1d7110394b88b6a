package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-news-chat/internal/validators"
	"github.com/MKhiriev/go-news-chat/models"
)

type ChatValidationService struct {
	inner     ChatService
	validator validators.Validator
}

func NewChatValidationService() ChatServiceWrapper {
	return &ChatValidationService{
		validator: validators.NewChatValidator(),
	}
}

func (v *ChatValidationService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	// message is checked before the session id
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ChatResponse{}, fmt.Errorf("error during chat request validation: %w", err)
	}

	return v.inner.Chat(ctx, req)
}

func (v *ChatValidationService) Wrap(wrapped ChatService) ChatService {
	v.inner = wrapped
	return v
}
