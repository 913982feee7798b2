package search

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/mobidoc/manualqa/ai"
	"github.com/mobidoc/manualqa/core"
	"github.com/mobidoc/manualqa/storage"
)

// Score weights and the relevance threshold. Fixed design constants:
// title relevance dominates, the keyword and semantic signals refine
// the ordering, and the bonus nudges procedural sections up.
const (
	titleWeight    = 0.6
	keywordWeight  = 0.15
	semanticWeight = 0.15
	bonusWeight    = 0.10

	// Sections scoring at or below this carry no discernible relevance
	// signal and are excluded rather than ranked at the bottom.
	scoreThreshold = 0.05
)

// Searcher ranks a collection's manual sections against a query using
// combined lexical and semantic scoring.
type Searcher struct {
	store    storage.DocumentStore
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given document store.
func NewSearcher(store storage.DocumentStore, provider ai.AIProvider, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		store:    store,
		embedder: provider.Embedder(),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Rank scores every section of the collection's active document
// against the query and returns up to k sections ordered by total
// score descending. A collection with no active document and k <= 0
// both yield an empty result, not an error. An embedding provider
// outage degrades to lexical-only scoring; Rank never fails for a
// valid document and an arbitrary query string.
func (s *Searcher) Rank(ctx context.Context, query, collection string, k int) ([]*core.ScoredSection, error) {
	return s.RankWithMonitor(ctx, query, collection, k, nil)
}

// RankWithMonitor ranks sections with monitoring.
// The monitor receives callbacks at each stage of the ranking process.
func (s *Searcher) RankWithMonitor(ctx context.Context, query, collection string, k int, monitor SearchMonitor) ([]*core.ScoredSection, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	snapshot, ok := s.store.Snapshot(collection)
	if !ok {
		s.logger.Debug("no active document", "collection", collection)
		return []*core.ScoredSection{}, nil
	}
	if k <= 0 {
		return []*core.ScoredSection{}, nil
	}

	// Embed the query. Failure or cancellation degrades relevance
	// quality but never fails the ranking: the semantic sub-score
	// contributes 0 for every section.
	var queryVector []float32
	if len(snapshot.Vectors) > 0 {
		vector, err := s.embedder.EmbedText(ctx, query)
		monitor.AfterQueryEmbedding(vector, err)
		if err != nil {
			s.logger.Warn("query embedding unavailable, falling back to lexical scoring",
				"collection", collection, "err", err)
		} else {
			queryVector = vector
		}
	}

	doc := snapshot.Document
	results := make([]*core.ScoredSection, 0, len(doc.Sections))
	for i := range doc.Sections {
		section := &doc.Sections[i]

		scores := core.SubScores{
			Title:   TitleScore(query, section.Title),
			Keyword: KeywordScore(query, section.Keywords),
			Bonus:   BonusScore(query, section),
		}
		if queryVector != nil && i < len(snapshot.Vectors) {
			scores.Semantic = CosineScore(queryVector, snapshot.Vectors[i])
		}

		total := titleWeight*scores.Title +
			keywordWeight*scores.Keyword +
			semanticWeight*scores.Semantic +
			bonusWeight*scores.Bonus
		monitor.SectionScored(section, scores, total)

		if total <= scoreThreshold {
			continue
		}

		results = append(results, &core.ScoredSection{
			Section: section,
			Source:  doc.Source,
			Score:   total,
			Details: core.SubScores{
				Title:    round3(scores.Title),
				Keyword:  round3(scores.Keyword),
				Semantic: round3(scores.Semantic),
				Bonus:    round3(scores.Bonus),
			},
		})
	}

	// Sort by total descending; the stable sort keeps document order
	// between tied sections, so results are deterministic
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}

	for i, result := range results {
		if i >= 3 {
			break
		}
		s.logger.Debug("ranked section",
			"rank", i+1,
			"score", round3(result.Score),
			"title", result.Section.Title,
			"pages", result.Section.Pages)
	}
	monitor.Finish(results)

	return results, nil
}

// round3 rounds a sub-score to three decimal places for the stable
// output shape callers log and assert on.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
