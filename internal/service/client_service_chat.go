package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/adapter"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/models"
)

type clientChatService struct {
	adapter adapter.AssistantAdapter
	logger  *logger.Logger
	now     func() time.Time

	mu         sync.Mutex
	sessionID  string
	transcript models.Transcript
	busy       bool
	lastError  string
	// epoch changes whenever the session is dropped or replaced. A reply
	// is appended only if the epoch it was sent in is still current.
	epoch uint64
	// generation changes only when the transcript is replaced.
	generation uint64
}

// NewClientChatService creates the session controller on top of
// assistantAdapter. The controller starts without a session; Initialize must
// be called before Send is accepted.
func NewClientChatService(assistantAdapter adapter.AssistantAdapter, logger *logger.Logger) ClientChatService {
	return &clientChatService{
		adapter: assistantAdapter,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *clientChatService) Initialize(ctx context.Context) error {
	sessionID, err := s.adapter.CreateSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastError = MsgConnectivity
		s.logger.Err(err).Str("func", "clientChatService.Initialize").Msg("failed to create session")
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	s.epoch++
	s.generation++
	s.sessionID = sessionID
	s.transcript = models.Transcript{{
		Role:      models.RoleAssistant,
		Content:   MsgGreeting,
		Timestamp: s.nowMillis(),
	}}
	s.lastError = ""

	s.logger.Info().Str(logger.SessionIDField, sessionID).Msg("session initialized")
	return nil
}

func (s *clientChatService) Submit(text string) (func(ctx context.Context) error, bool) {
	content := strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if content == "" || s.sessionID == "" || s.busy {
		return nil, false
	}

	s.transcript = append(s.transcript, models.Turn{
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: s.nowMillis(),
	})
	s.busy = true
	s.lastError = ""

	req := models.ChatRequest{Message: content, SessionID: s.sessionID}
	epoch, generation := s.epoch, s.generation

	var once sync.Once
	dispatch := func(ctx context.Context) error {
		var err error
		once.Do(func() { err = s.dispatch(ctx, epoch, generation, req) })
		return err
	}

	return dispatch, true
}

func (s *clientChatService) Send(ctx context.Context, text string) (bool, error) {
	dispatch, accepted := s.Submit(text)
	if !accepted {
		return false, nil
	}

	return true, dispatch(ctx)
}

// dispatch issues the chat request and appends the reply. The busy flag is
// released on every path, including a panic inside the exchange.
//
// When the session was dropped meanwhile, the reply is discarded. If the
// transcript holding the user turn is still shown, the turn is answered with
// the apology instead so that it never stays unanswered.
func (s *clientChatService) dispatch(ctx context.Context, epoch, generation uint64, req models.ChatRequest) error {
	var (
		reply   models.Turn
		userMsg string
		err     error
	)

	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.busy = false

		if s.epoch != epoch {
			s.logger.Debug().Str(logger.SessionIDField, req.SessionID).Msg("dropping reply of a replaced session")
			if s.generation == generation {
				s.transcript = append(s.transcript, s.apologyTurn())
			}
			return
		}
		s.transcript = append(s.transcript, reply)
		s.lastError = userMsg
	}()

	reply, userMsg, err = s.exchange(ctx, req)
	return err
}

func (s *clientChatService) exchange(ctx context.Context, req models.ChatRequest) (reply models.Turn, userMsg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("func", "clientChatService.exchange").Msg("chat exchange panicked")
			reply, userMsg, err = s.apologyTurn(), MsgChatFailed, fmt.Errorf("%w: panic: %v", ErrChatRequest, r)
		}
	}()

	resp, err := s.adapter.SendChat(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "clientChatService.exchange").Str(logger.SessionIDField, req.SessionID).Msg("chat request failed")
		return s.apologyTurn(), chatErrorMessage(err), fmt.Errorf("%w: %w", ErrChatRequest, err)
	}

	return models.Turn{
		Role:      models.RoleAssistant,
		Content:   resp.Response,
		Sources:   resp.Sources,
		Timestamp: resp.Timestamp,
	}, "", nil
}

func (s *clientChatService) Reset(ctx context.Context) error {
	s.relinquish(ctx)
	return s.Initialize(ctx)
}

func (s *clientChatService) Close(ctx context.Context) {
	s.relinquish(ctx)
}

// relinquish drops the current session locally and asks the server to delete
// it. Failures are logged and otherwise ignored.
func (s *clientChatService) relinquish(ctx context.Context) {
	s.mu.Lock()
	sessionID := s.sessionID
	s.sessionID = ""
	s.epoch++
	s.mu.Unlock()

	if sessionID == "" {
		return
	}

	if err := s.adapter.DeleteSession(ctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Str(logger.SessionIDField, sessionID).Msg("failed to relinquish session")
		return
	}

	s.logger.Debug().Str(logger.SessionIDField, sessionID).Msg("session relinquished")
}

func (s *clientChatService) Transcript() models.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transcript.Clone()
}

func (s *clientChatService) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionID
}

func (s *clientChatService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.busy
}

func (s *clientChatService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastError
}

func (s *clientChatService) apologyTurn() models.Turn {
	return models.Turn{
		Role:      models.RoleAssistant,
		Content:   MsgApology,
		Timestamp: s.nowMillis(),
		Error:     true,
	}
}

func (s *clientChatService) nowMillis() int64 {
	return s.now().UnixMilli()
}
