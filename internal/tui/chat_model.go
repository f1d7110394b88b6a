// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/service"
	"github.com/MKhiriev/go-news-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputPlaceholder  = "Ask about the news..."
	waitingForSession = "No session. Press ctrl+r to reconnect."
	waitingForReply   = "Waiting for the answer..."
	startingNewChat   = "Starting a new conversation..."
	maxInputLength    = 4000

	// title, divider, banner, typing line, divider, input, footer, help
	chromeHeight = 8

	statusTTL = 2 * time.Second
)

const helpText = "enter: send · ctrl+r: new chat · ctrl+y: copy answer · pgup/pgdown: scroll · ctrl+b: about · esc: quit"

type chatModel struct {
	ctx       context.Context
	chat      service.ClientChatService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	viewport viewport.Model
	input    textinput.Model
	typing   typingModel
	markdown *markdownRenderer

	width int
	ready bool

	resetting     bool
	showBuildInfo bool
	status        string

	copyToClipboard func(string) error
}

func newChatModel(ctx context.Context, chat service.ClientChatService, buildInfo models.AppBuildInfo, logger *logger.Logger) chatModel {
	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "> "
	input.CharLimit = maxInputLength
	input.Focus()

	return chatModel{
		ctx:             ctx,
		chat:            chat,
		buildInfo:       buildInfo,
		logger:          logger,
		viewport:        viewport.New(0, 0),
		input:           input,
		typing:          newTypingModel(),
		markdown:        newMarkdownRenderer(),
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.typing.spinner.Tick)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshTranscript()
		return m, nil
	case chatSettledMsg:
		m.refreshTranscript()
		return m, nil
	case resetDoneMsg:
		m.resetting = false
		m.refreshTranscript()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing.spinner, cmd = m.typing.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		switch {
		case key.Matches(msg, keys.back):
			m.showBuildInfo = false
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.send):
		return m.submit()
	case key.Matches(msg, keys.reset):
		return m.reset()
	case key.Matches(msg, keys.copy):
		return m.copyLastAnswer()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.pageUp, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.inputEnabled() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	if m.resetting {
		return m, nil
	}

	dispatch, accepted := m.chat.Submit(m.input.Value())
	if !accepted {
		return m, nil
	}

	m.input.Reset()
	m.refreshTranscript()
	return m, m.cmdDispatch(dispatch)
}

func (m chatModel) reset() (tea.Model, tea.Cmd) {
	// a pending answer must settle first
	if m.resetting || m.chat.Busy() {
		return m, nil
	}

	m.resetting = true
	m.status = ""
	return m, m.cmdReset()
}

func (m chatModel) copyLastAnswer() (tea.Model, tea.Cmd) {
	turn, ok := m.chat.Transcript().LastAssistant()
	if !ok {
		m.status = "Nothing to copy yet"
		return m, clearStatusAfter(statusTTL)
	}

	if err := m.copyToClipboard(turn.Content); err != nil {
		m.logger.Warn().Err(err).Str("func", "chatModel.copyLastAnswer").Msg("clipboard write failed")
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return m, clearStatusAfter(statusTTL)
	}

	m.status = "Copied last answer"
	return m, clearStatusAfter(statusTTL)
}

func (m chatModel) cmdDispatch(dispatch func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		return chatSettledMsg{err: dispatch(ctx)}
	}
}

func (m chatModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	svc := m.chat

	return func() tea.Msg {
		return resetDoneMsg{err: svc.Reset(ctx)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m chatModel) inputEnabled() bool {
	return !m.resetting && !m.chat.Busy() && m.chat.SessionID() != ""
}

func (m *chatModel) resize(width, height int) {
	contentWidth := max(width-appStyle.GetHorizontalFrameSize(), 1)
	contentHeight := max(height-appStyle.GetVerticalFrameSize()-chromeHeight, 1)

	m.width = contentWidth
	m.viewport.Width = contentWidth
	m.viewport.Height = contentHeight
	m.input.Width = max(contentWidth-len(m.input.Prompt)-1, 1)
	m.markdown.setWidth(contentWidth)
	m.ready = true
}

func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderTranscript(m.chat.Transcript(), m.markdown))
	m.viewport.GotoBottom()
}

func (m chatModel) View() string {
	if !m.ready {
		return appStyle.Render(connectingLabel)
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(divider(m.width))
	b.WriteString("\n")
	b.WriteString(m.bannerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.chat.Busy() {
		b.WriteString(m.typing.View())
	}
	b.WriteString("\n")
	b.WriteString(divider(m.width))
	b.WriteString("\n")
	b.WriteString(m.inputView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))

	return appStyle.Render(b.String())
}

func (m chatModel) bannerView() string {
	if lastErr := m.chat.LastError(); lastErr != "" {
		return errorStyle.Render("! " + lastErr)
	}
	return ""
}

func (m chatModel) inputView() string {
	switch {
	case m.inputEnabled():
		return m.input.View()
	case m.resetting:
		return helpStyle.Render(m.input.Prompt + startingNewChat)
	case m.chat.SessionID() == "":
		return helpStyle.Render(m.input.Prompt + waitingForSession)
	default:
		return helpStyle.Render(m.input.Prompt + waitingForReply)
	}
}

func (m chatModel) footerView() string {
	footer := sessionLabel(m.chat.SessionID())
	if m.status != "" {
		footer += " · " + m.status
	}
	return helpStyle.Render(footer)
}
