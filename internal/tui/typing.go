package tui

import "github.com/charmbracelet/bubbles/spinner"

const typingText = "Assistant is typing..."

type typingModel struct {
	spinner spinner.Model
}

func newTypingModel() typingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return typingModel{spinner: s}
}

func (m typingModel) View() string {
	return m.spinner.View() + " " + typingText
}
