// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders assistant answers. Until a width is known, and
// whenever glamour fails, content is returned as is.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{}
}

func (r *markdownRenderer) setWidth(width int) {
	if width <= 0 || (width == r.width && r.renderer != nil) {
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.renderer = nil
		return
	}

	r.width = width
	r.renderer = renderer
}

func (r *markdownRenderer) render(content string) string {
	if r == nil || r.renderer == nil {
		return content
	}

	out, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
