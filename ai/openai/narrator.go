// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/landscape/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Narrator implements ai.Narrator using OpenAI-compatible chat APIs.
// It receives a frozen assessment and returns prose; nothing it produces
// flows back into scoring.
type Narrator struct {
	client llms.Model
	logger *slog.Logger
}

// newNarrator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newNarrator(config *ai.Config) (*Narrator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.NarratorHost),
		openai.WithToken("none"),
		openai.WithModel(config.NarratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &Narrator{
		client: client,
		logger: slog.Default().With("component", "openai-narrator"),
	}, nil
}

// NewNarrator creates a new narrator using the provided configuration.
//
// Returns ai.Narrator interface to enforce abstraction.
func NewNarrator(config *ai.Config) (ai.Narrator, error) {
	return newNarrator(config)
}

// Narrate generates a narrative summary for the given frozen assessment.
func (n *Narrator) Narrate(ctx context.Context, input *ai.NarrativeInput) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(narratorSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildNarrativePrompt(input)),
			},
		},
	}

	response, err := n.client.GenerateContent(ctx, content, llms.WithTemperature(0.7))
	if err != nil {
		n.logger.Error("failed to generate narrative", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		n.logger.Warn("no choices returned from narrator model")
		return "", ai.ErrEmptyNarrative
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	if text == "" {
		return "", ai.ErrEmptyNarrative
	}

	n.logger.Debug("received narrative", "chars", len(text))
	return text, nil
}
