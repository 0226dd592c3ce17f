package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/landscape/ai"
	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/scoring"
	"github.com/poiesic/landscape/search"
	"github.com/poiesic/landscape/storage"
	"github.com/poiesic/landscape/verdict"
)

const defaultChunkSize = 16

// Dropped records a candidate excluded from a run before scoring.
type Dropped struct {
	SourceID string
	Title    string
	Reason   string
}

// Run is the complete result of one landscape analysis.
type Run struct {
	Topic       *core.Topic
	Queries     []search.Query
	PoolSize    int // deduplicated pool size before thresholding
	TopicVector []float32
	Comparisons []*core.Candidate // above threshold, rank order
	Excluded    []*core.Candidate // below threshold, kept for visualization
	Dropped     []Dropped
	Assessment  *core.Assessment
	Narrative   string // empty until Narrate is called
}

// Pipeline runs landscape analyses.
type Pipeline struct {
	source     search.Source
	encoder    ai.Encoder
	narrator   ai.Narrator
	vectors    storage.VectorStore
	ranker     *scoring.Ranker
	engine     *verdict.Engine
	encodePool *ants.Pool
	chunkSize  int
	minScore   float64
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithVectorStore enables embedding caching across runs. Cache keys derive
// from the encoder model and document text, so cache hits skip the encoder
// entirely.
func WithVectorStore(vectors storage.VectorStore) Option {
	return func(p *Pipeline) error {
		p.vectors = vectors
		return nil
	}
}

// WithMinScore sets the relevance threshold in [0, 1].
// Default is scoring.DefaultMinScore.
func WithMinScore(minScore float64) Option {
	return func(p *Pipeline) error {
		if minScore < 0 || minScore > 1 {
			return scoring.ErrInvalidThreshold
		}
		p.minScore = minScore
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent document encoding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.encodePool != nil {
			p.encodePool.Release()
		}

		encodePool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.encodePool = encodePool
		return nil
	}
}

// WithChunkSize sets how many documents go into one encoder batch call.
// Default is 16.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.chunkSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new analysis pipeline.
func NewPipeline(source search.Source, provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	encodePool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		source:     source,
		encoder:    provider.Encoder(),
		narrator:   provider.Narrator(),
		encodePool: encodePool,
		chunkSize:  defaultChunkSize,
		minScore:   scoring.DefaultMinScore,
		logger:     slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.logger = p.logger.With("component", "pipeline")

	ranker, err := scoring.NewRanker(
		scoring.WithMinScore(p.minScore),
		scoring.WithRankerLogger(p.logger),
	)
	if err != nil {
		p.Release()
		return nil, err
	}
	engine, err := verdict.NewEngine(verdict.WithLogger(p.logger))
	if err != nil {
		p.Release()
		return nil, err
	}
	p.ranker = ranker
	p.engine = engine

	return p, nil
}

// Release frees the worker pool. The pipeline is unusable afterward.
func (p *Pipeline) Release() {
	if p.encodePool != nil {
		p.encodePool.Release()
	}
}

// Run executes a full analysis for the topic.
func (p *Pipeline) Run(ctx context.Context, topic *core.Topic) (*Run, error) {
	if err := core.ValidateTopic(topic); err != nil {
		return nil, err
	}

	run := &Run{Topic: topic}
	run.Queries = search.QueryVariants(topic)
	p.logger.Info("starting run", "topic", topic.Title, "queries", len(run.Queries))

	pool, err := p.source.SearchAll(ctx, run.Queries)
	if err != nil {
		return nil, err
	}

	// Candidates with no text at all cannot be encoded or concept-scored.
	kept := make([]*core.Candidate, 0, len(pool))
	for _, candidate := range pool {
		if strings.TrimSpace(candidate.Text()) == "" {
			run.Dropped = append(run.Dropped, Dropped{
				SourceID: candidate.SourceID,
				Title:    candidate.Title,
				Reason:   "empty text",
			})
			continue
		}
		kept = append(kept, candidate)
	}
	pool = kept
	run.PoolSize = len(pool)

	topicVector, err := p.encoder.EncodeQuery(ctx, topic.Text())
	if err != nil {
		return nil, err
	}
	run.TopicVector = topicVector

	if err := p.encodeDocuments(ctx, topicVector, pool); err != nil {
		return nil, err
	}

	table := scoring.NewIDFTable(topic.Keywords, pool)
	ranking := p.ranker.Rank(topicVector, table, pool)
	run.Comparisons = ranking.Comparisons
	run.Excluded = ranking.Excluded

	run.Assessment = p.engine.Assess(topic.Branch, ranking.Comparisons, run.PoolSize)
	return run, nil
}

// cacheID keys cached vectors by encoder model and document text, so a model
// swap or an edited abstract never serves a stale embedding.
func (p *Pipeline) cacheID(candidate *core.Candidate) core.ID {
	return core.IDFromContent(p.encoder.ModelID() + "|document|" + candidate.Text())
}

// encodeDocuments populates candidate vectors, using the vector store as a
// cache when configured and chunking cache misses through the worker pool.
// All-or-nothing: any failed chunk fails the whole call, and every vector
// must match the topic vector's dimensionality.
func (p *Pipeline) encodeDocuments(ctx context.Context, topicVector []float32, pool []*core.Candidate) error {
	misses := make([]*core.Candidate, 0, len(pool))
	for _, candidate := range pool {
		if p.vectors != nil {
			vector, err := p.vectors.GetVector(ctx, p.cacheID(candidate))
			// A cached vector from another embedding space is a miss
			if err == nil && len(vector) == len(topicVector) {
				candidate.Vector = vector
				continue
			}
		}
		misses = append(misses, candidate)
	}
	p.logger.Debug("encoding documents", "total", len(pool), "cached", len(pool)-len(misses))
	if len(misses) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for start := 0; start < len(misses); start += p.chunkSize {
		end := start + p.chunkSize
		if end > len(misses) {
			end = len(misses)
		}
		chunk := misses[start:end]

		wg.Add(1)
		submitErr := p.encodePool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(chunk))
			for i, candidate := range chunk {
				texts[i] = candidate.Text()
			}

			vectors, err := p.encoder.EncodeDocuments(ctx, texts)
			if err == nil && len(vectors) != len(chunk) {
				err = ai.ErrEncoderFailure
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if firstErr != nil {
				return
			}
			for i, candidate := range chunk {
				candidate.Vector = vectors[i]
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		// Discard any vectors written before the failure surfaced
		for _, candidate := range misses {
			candidate.Vector = nil
		}
		p.logger.Error("document encoding failed", "err", firstErr)
		return errors.Join(ErrEncodingFailed, firstErr)
	}

	// Every document vector must live in the topic vector's space; a
	// mismatch is fatal before it can zero out cosine scores
	for _, candidate := range pool {
		if len(candidate.Vector) != len(topicVector) {
			p.logger.Error("embedding dimension mismatch",
				"source_id", candidate.SourceID,
				"want", len(topicVector), "got", len(candidate.Vector))
			return ai.ErrDimensionMismatch
		}
	}

	if p.vectors != nil {
		ids := make([]core.ID, len(misses))
		vectors := make([][]float32, len(misses))
		for i, candidate := range misses {
			ids[i] = p.cacheID(candidate)
			vectors[i] = candidate.Vector
		}
		// Cache failures degrade performance, not correctness
		if err := p.vectors.PutVectors(ctx, ids, vectors); err != nil {
			p.logger.Warn("vector cache write failed", "err", err)
		}
	}
	return nil
}

// Narrate generates prose for a completed run. The assessment is handed to
// the narrator as a frozen input; nothing the narrator returns can change
// the run's scores or verdict.
func (p *Pipeline) Narrate(ctx context.Context, run *Run) (string, error) {
	input := &ai.NarrativeInput{
		TopicTitle:       run.Topic.Title,
		TopicDescription: run.Topic.Description,
		RequestingBranch: run.Topic.Branch,
		Verdict:          run.Assessment.Verdict,
		Confidence:       run.Assessment.Confidence,
		BranchRelevance:  run.Assessment.BranchRelevance,
		ReasoningInput:   branchLabeled(run.Assessment.Comparisons),
		Comparisons:      run.Assessment.Comparisons,
		CandidateTexts:   candidateTexts(run.Comparisons),
	}

	narrative, err := p.narrator.Narrate(ctx, input)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(narrative) == "" {
		return "", ai.ErrEmptyNarrative
	}

	run.Narrative = narrative
	return narrative, nil
}

// branchLabeled filters to the comparisons with a known funding branch, the
// ones that fed the branch-relevance classification.
func branchLabeled(comparisons []core.Comparison) []core.Comparison {
	labeled := make([]core.Comparison, 0, len(comparisons))
	for _, c := range comparisons {
		if c.Branch != core.BranchUnknown && c.Branch != "" {
			labeled = append(labeled, c)
		}
	}
	return labeled
}

// candidateTexts maps the top comparisons to their title and abstract so the
// narrator can quote actual content.
func candidateTexts(comparisons []*core.Candidate) map[string]string {
	const maxTexts = 10
	texts := make(map[string]string, maxTexts)
	for i, candidate := range comparisons {
		if i >= maxTexts {
			break
		}
		texts[candidate.SourceID] = candidate.Text()
	}
	return texts
}
