// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ai drafts article content from a title and category through
// the OpenAI chat API. A missing API key disables the feature without
// touching any other flow.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrNotConfigured is returned when no API key is configured.
var ErrNotConfigured = errors.New("génération IA non configurée")

// DefaultModel is used when none is configured.
const DefaultModel = "gpt-4o-mini"

// Generator drafts French article bodies.
type Generator struct {
	client  openai.Client
	model   string
	enabled bool
}

// NewGenerator creates a Generator. An empty apiKey yields a disabled
// generator whose Generate always returns ErrNotConfigured.
func NewGenerator(apiKey, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	if apiKey == "" {
		return &Generator{model: model}
	}
	return &Generator{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		enabled: true,
	}
}

// Enabled reports whether a key is configured.
func (g *Generator) Enabled() bool {
	return g.enabled
}

// BuildPrompt assembles the editorial prompt for a title and category.
func BuildPrompt(title, category string) string {
	return fmt.Sprintf(`Rédige un article de presse en français pour un média en ligne nommé ELIKIA MEDIA, qui se concentre sur l'actualité africaine.

Le titre de l'article est : %q
La catégorie est : %q

L'article doit être bien structuré, informatif et engageant. Utilise des balises HTML simples pour la mise en forme : <p> pour les paragraphes et <h2> pour les sous-titres. N'inclus pas de balise <html>, <body> ou <head>. Commence directement par le contenu de l'article. L'article doit faire environ 3-4 paragraphes.`, title, category)
}

// Generate drafts an article body for the given title and category.
func (g *Generator) Generate(ctx context.Context, title, category string) (string, error) {
	if !g.enabled {
		return "", ErrNotConfigured
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(title, category)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("generating article content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("generating article content: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
