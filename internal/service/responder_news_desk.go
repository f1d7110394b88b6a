// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/models"
)

type headline struct {
	title   string
	summary string
	source  models.Source
}

type newsTopic struct {
	name      string
	keywords  []string
	headlines []headline
}

// newsDesk is a canned catalogue of stories keyed by topic. It lets the
// development server answer like the real assistant without calling out to
// any model or feed.
var newsDesk = []newsTopic{
	{
		name:     "World",
		keywords: []string{"world", "international", "global", "europe", "asia", "africa", "election", "politic"},
		headlines: []headline{
			{
				title:   "Leaders gather for climate summit",
				summary: "Delegations from over 150 countries meet to negotiate new emission targets.",
				source:  models.Source{Title: "Reuters World", Link: "https://www.reuters.com/world/"},
			},
			{
				title:   "Ceasefire talks resume",
				summary: "Mediators report cautious progress after a week of closed-door negotiations.",
				source:  models.Source{Title: "BBC News World", Link: "https://www.bbc.com/news/world"},
			},
		},
	},
	{
		name:     "Business",
		keywords: []string{"business", "market", "stock", "economy", "finance", "bank", "inflation"},
		headlines: []headline{
			{
				title:   "Markets close higher on rate outlook",
				summary: "Major indices gained as investors priced in a pause in interest rate hikes.",
				source:  models.Source{Title: "Financial Times", Link: "https://www.ft.com/markets"},
			},
			{
				title:   "Inflation cools for a third month",
				summary: "Consumer prices rose less than expected, easing pressure on households.",
				source:  models.Source{Title: "Bloomberg Economics", Link: "https://www.bloomberg.com/economics"},
			},
		},
	},
	{
		name:     "Technology",
		keywords: []string{"tech", "technology", "ai", "software", "gadget", "startup", "chip"},
		headlines: []headline{
			{
				title:   "New open-source language model released",
				summary: "Researchers published weights and training data for a model rivaling commercial systems.",
				source:  models.Source{Title: "The Verge", Link: "https://www.theverge.com/tech"},
			},
			{
				title:   "Chipmakers expand capacity",
				summary: "Three new fabrication plants were announced to meet demand for accelerators.",
				source:  models.Source{Title: "Ars Technica", Link: "https://arstechnica.com/gadgets/"},
			},
		},
	},
	{
		name:     "Science",
		keywords: []string{"science", "space", "nasa", "research", "health", "climate", "medicine"},
		headlines: []headline{
			{
				title:   "Probe sends first images from the outer planets",
				summary: "Mission scientists describe the pictures as the sharpest ever taken at that distance.",
				source:  models.Source{Title: "NASA News", Link: "https://www.nasa.gov/news/"},
			},
		},
	},
	{
		name:     "Sports",
		keywords: []string{"sport", "sports", "football", "soccer", "tennis", "basketball", "olympic", "match"},
		headlines: []headline{
			{
				title:   "Underdogs win the cup final",
				summary: "A late goal settled a final that few pundits expected the winners to reach.",
				source:  models.Source{Title: "ESPN", Link: "https://www.espn.com/"},
			},
		},
	},
}

var greetingWords = []string{"hello", "hi", "hey", "good morning", "good evening"}

type newsDeskResponder struct {
	topics []newsTopic

	logger *logger.Logger
}

// NewNewsDeskResponder returns a [Responder] answering from a fixed
// catalogue of headlines.
func NewNewsDeskResponder(logger *logger.Logger) Responder {
	return &newsDeskResponder{
		topics: newsDesk,
		logger: logger,
	}
}

func (r *newsDeskResponder) Reply(ctx context.Context, history []models.Message, message string) (models.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return models.ChatResponse{}, err
	}

	text := strings.ToLower(strings.TrimSpace(message))

	matched := r.match(text)
	if len(matched) == 0 {
		if isGreeting(text) {
			return models.ChatResponse{
				Response: "Hi there! Ask me about **world**, **business**, **technology**, **science** or **sports** news.",
			}, nil
		}
		if len(history) > 0 {
			if topic, ok := r.lastTopic(history); ok {
				matched = []newsTopic{topic}
			}
		}
	}
	if len(matched) == 0 {
		matched = r.topStories()
	}

	return r.render(matched), nil
}

func (r *newsDeskResponder) match(text string) []newsTopic {
	var matched []newsTopic
	words := strings.FieldsFunc(text, func(c rune) bool {
		return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
	})

	for _, topic := range r.topics {
		if topicMatches(topic, words) {
			matched = append(matched, topic)
		}
	}
	return matched
}

func topicMatches(topic newsTopic, words []string) bool {
	for _, w := range words {
		for _, k := range topic.keywords {
			if w == k || (len(k) > 3 && strings.HasPrefix(w, k)) {
				return true
			}
		}
	}
	return false
}

// lastTopic finds the topic of the most recent user message that named one,
// so follow-ups like "tell me more" stay on topic.
func (r *newsDeskResponder) lastTopic(history []models.Message) (newsTopic, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != models.RoleUser {
			continue
		}
		if matched := r.match(strings.ToLower(history[i].Content)); len(matched) > 0 {
			return matched[0], true
		}
	}
	return newsTopic{}, false
}

// topStories takes the lead story of every topic.
func (r *newsDeskResponder) topStories() []newsTopic {
	top := make([]newsTopic, 0, len(r.topics))
	for _, topic := range r.topics {
		if len(topic.headlines) == 0 {
			continue
		}
		top = append(top, newsTopic{name: topic.name, headlines: topic.headlines[:1]})
	}
	return top
}

func (r *newsDeskResponder) render(topics []newsTopic) models.ChatResponse {
	var (
		b       strings.Builder
		sources []models.Source
	)

	b.WriteString("Here are the latest headlines:\n")
	for _, topic := range topics {
		fmt.Fprintf(&b, "\n### %s\n\n", topic.name)
		for _, h := range topic.headlines {
			fmt.Fprintf(&b, "- **%s**: %s\n", h.title, h.summary)
			sources = append(sources, h.source)
		}
	}

	return models.ChatResponse{
		Response: strings.TrimRight(b.String(), "\n"),
		Sources:  sources,
	}
}

func isGreeting(text string) bool {
	for _, g := range greetingWords {
		if text == g || strings.HasPrefix(text, g+" ") || strings.HasPrefix(text, g+"!") || strings.HasPrefix(text, g+",") {
			return true
		}
	}
	return false
}
