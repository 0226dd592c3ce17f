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


package landscape

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/poiesic/landscape/ai"
	"github.com/poiesic/landscape/ai/openai"
	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/pipeline"
	"github.com/poiesic/landscape/scoring"
	"github.com/poiesic/landscape/search"
	"github.com/poiesic/landscape/storage"
	"github.com/poiesic/landscape/storage/badger"
)

// Analyzer wires storage, search, and AI services into a ready-to-use
// landscape analysis facade.
type Analyzer struct {
	backend     *badger.Backend
	vectors     storage.VectorStore
	assessments storage.AssessmentStore
	provider    ai.Provider
	source      search.Source
	minScore    float64
	logger      *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzerOptions)

type analyzerOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	source   search.Source
	minScore float64
}

// WithAIConfig sets the AI service configuration used to build the default
// OpenAI-compatible provider. Ignored when WithProvider is given.
func WithAIConfig(config *ai.Config) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.aiConfig = config
	}
}

// WithProvider replaces the default OpenAI-compatible provider.
func WithProvider(provider ai.Provider) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.provider = provider
	}
}

// WithSource replaces the default Dimensions publication source.
func WithSource(source search.Source) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.source = source
	}
}

// WithRelevanceThreshold sets the minimum fused score for the comparison set.
// Default is scoring.DefaultMinScore.
func WithRelevanceThreshold(minScore float64) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.minScore = minScore
	}
}

// NewAnalyzer creates an analyzer backed by a BadgerDB database at filePath.
// An empty path opens an in-memory database; nothing survives Close.
func NewAnalyzer(filePath string, opts ...AnalyzerOption) (*Analyzer, error) {
	// Apply options
	options := &analyzerOptions{
		aiConfig: ai.DefaultConfig(),
		minScore: scoring.DefaultMinScore,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	vectors, err := badger.NewVectorStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	assessments, err := badger.NewAssessmentStore(backend)
	if err != nil {
		vectors.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			assessments.Close()
			vectors.Close()
			backend.Close()
			return nil, err
		}
	}

	source := options.source
	if source == nil {
		source, err = search.NewDimensionsSource()
		if err != nil {
			provider.Close()
			assessments.Close()
			vectors.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Analyzer{
		backend:     backend,
		vectors:     vectors,
		assessments: assessments,
		provider:    provider,
		source:      source,
		minScore:    options.minScore,
		logger:      slog.Default(),
	}, nil
}

// Close releases all resources.
func (a *Analyzer) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.assessments.Close(); err != nil {
		a.logger.Error("error closing assessment store", "err", err)
		return err
	}
	if err := a.vectors.Close(); err != nil {
		a.logger.Error("error closing vector store", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Assessments returns the assessment archive.
func (a *Analyzer) Assessments() storage.AssessmentStore {
	return a.assessments
}

// Analyze runs a full landscape analysis for the topic and archives the
// assessment. When narrate is true, an executive-summary narrative is
// generated after the verdict; narrator failures are logged and the run is
// returned without prose, since the assessment never depends on narrative
// output.
func (a *Analyzer) Analyze(ctx context.Context, topic *core.Topic, narrate bool) (*pipeline.Run, error) {
	p, err := pipeline.NewPipeline(a.source, a.provider,
		pipeline.WithVectorStore(a.vectors),
		pipeline.WithMinScore(a.minScore),
	)
	if err != nil {
		return nil, err
	}
	defer p.Release()

	run, err := p.Run(ctx, topic)
	if err != nil {
		return nil, err
	}

	if narrate {
		if _, err := p.Narrate(ctx, run); err != nil {
			a.logger.Warn("narrative generation failed, continuing without prose", "err", err)
		}
	}

	payload, err := json.Marshal(run.Assessment)
	if err != nil {
		return nil, err
	}
	if _, err := a.assessments.PutAssessment(ctx, &core.AssessmentRecord{
		TopicTitle: topic.Title,
		Payload:    string(payload),
	}); err != nil {
		a.logger.Error("error archiving assessment", "err", err)
		return nil, err
	}

	return run, nil
}
