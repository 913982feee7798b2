package search

import "github.com/mobidoc/manualqa/core"

// SearchMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results during ranking.
type SearchMonitor interface {
	Start(query string)
	AfterQueryEmbedding(vector []float32, err error)
	SectionScored(section *core.Section, scores core.SubScores, total float64)
	Finish(results []*core.ScoredSection)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                             {}
func (n *noopMonitor) AfterQueryEmbedding(_ []float32, _ error)                   {}
func (n *noopMonitor) SectionScored(_ *core.Section, _ core.SubScores, _ float64) {}
func (n *noopMonitor) Finish(_ []*core.ScoredSection)                             {}
