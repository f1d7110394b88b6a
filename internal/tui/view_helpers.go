package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-news-chat/models"
)

const (
	uiDivider        = "──────────────────────────────────────────────────────"
	timeLayout       = "03:04 PM"
	sessionIDPreview = 8
	connectingLabel  = "Connecting..."
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: quit")

	return b.String()
}

func divider(width int) string {
	if width <= 0 {
		return uiDivider
	}
	return strings.Repeat("─", width)
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// sessionLabel shortens the session id for the footer.
func sessionLabel(sessionID string) string {
	if sessionID == "" {
		return connectingLabel
	}
	return "Session: " + fitText(sessionID, sessionIDPreview) + "..."
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	return v[:max]
}

func renderTranscript(transcript models.Transcript, md *markdownRenderer) string {
	var b strings.Builder
	for i, turn := range transcript {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderTurn(turn, md))
	}
	return b.String()
}

func renderTurn(turn models.Turn, md *markdownRenderer) string {
	var b strings.Builder

	label := userLabelStyle.Render("You")
	body := turn.Content
	if turn.Role == models.RoleAssistant {
		label = assistantLabelStyle.Render("Assistant")
		body = md.render(turn.Content)
	}
	if turn.Error {
		body = errorStyle.Render(turn.Content)
	}

	b.WriteString(label)
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(formatTime(turn.Time())))
	b.WriteString("\n")
	b.WriteString(body)

	if len(turn.Sources) > 0 {
		b.WriteString("\n")
		b.WriteString(renderSources(turn.Sources))
	}

	return b.String()
}

func renderSources(sources []models.Source) string {
	var b strings.Builder
	b.WriteString(helpStyle.Render("Sources:"))
	for i, src := range sources {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, src.Title)
		if src.Link != "" {
			fmt.Fprintf(&b, " (%s)", src.Link)
		}
	}
	return b.String()
}
