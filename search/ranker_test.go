package search

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobidoc/manualqa/ai/mock"
	"github.com/mobidoc/manualqa/core"
	"github.com/mobidoc/manualqa/storage"
)

func testManual() *core.Document {
	return &core.Document{
		Source: "sonata_2024.json",
		Sections: []core.Section{
			{
				Number:   "1.1",
				Title:    "차량 개요",
				Content:  "이 매뉴얼은 차량의 기본 기능을 설명합니다.",
				Keywords: []string{"개요", "소개"},
				Pages:    core.PageRange{Start: 1, End: 5},
			},
			{
				Number: "4.2",
				Title:  "엔진오일 교체 방법",
				Content: "엔진오일 교체 절차. " +
					"1. 차량을 평평한 곳에 주차하고 엔진을 끕니다. " +
					"2. 드레인 플러그를 풀어 오일을 배출합니다. " +
					"3. 새 필터를 장착하고 규정량의 엔진오일을 주입합니다. " +
					strings.Repeat("레벨 게이지로 오일 양을 점검하고 필요하면 보충합니다. ", 5),
				Keywords: []string{"엔진오일", "교체", "오일 필터"},
				Pages:    core.PageRange{Start: 214, End: 218},
			},
			{
				Number:   "7.3",
				Title:    "오디오 시스템 설정",
				Content:  "오디오 시스템의 음량과 음질을 설정하는 방법을 설명합니다.",
				Keywords: []string{"오디오", "블루투스"},
				Pages:    core.PageRange{Start: 301, End: 310},
			},
			{
				Number:   "4.5",
				Title:    "타이어 공기압 점검",
				Content:  "타이어 공기압은 월 1회 점검합니다. 규정 공기압은 운전석 도어 라벨에 있습니다.",
				Keywords: []string{"타이어", "공기압", "점검"},
				Pages:    core.PageRange{Start: 230, End: 233},
			},
		},
	}
}

func newTestSearcher(t *testing.T) (*Searcher, *storage.Store, *mock.MockEmbedder) {
	t.Helper()

	store := storage.NewStore()
	embedder := mock.NewMockEmbedder()
	searcher, err := NewSearcher(store, mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	return searcher, store, embedder
}

func TestNewSearcher(t *testing.T) {
	t.Run("requires store", func(t *testing.T) {
		_, err := NewSearcher(nil, mock.NewMockProvider())
		assert.ErrorIs(t, err, ErrStoreRequired)
	})

	t.Run("requires provider", func(t *testing.T) {
		_, err := NewSearcher(storage.NewStore(), nil)
		assert.ErrorIs(t, err, ErrAIProviderRequired)
	})
}

func TestRank(t *testing.T) {
	ctx := context.Background()

	t.Run("relevant section ranked first", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		results, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 3)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Equal(t, "엔진오일 교체 방법", results[0].Section.Title)
		assert.GreaterOrEqual(t, results[0].Score, 1.0)
		assert.Equal(t, "sonata_2024.json", results[0].Source)
	})

	t.Run("results sorted descending", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		results, err := searcher.Rank(ctx, "타이어 점검 방법", "manuals", 10)
		require.NoError(t, err)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("at most k results", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		results, err := searcher.Rank(ctx, "점검 방법", "manuals", 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), 1)
	})

	t.Run("low scores excluded", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		results, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 10)
		require.NoError(t, err)
		for _, result := range results {
			assert.Greater(t, result.Score, scoreThreshold)
		}
		// The audio section shares no signal with an oil change query
		for _, result := range results {
			assert.NotEqual(t, "오디오 시스템 설정", result.Section.Title)
		}
	})

	t.Run("k of zero yields empty", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		results, err := searcher.Rank(ctx, "엔진오일 교체", "manuals", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("missing collection yields empty without error", func(t *testing.T) {
		searcher, _, _ := newTestSearcher(t)

		results, err := searcher.Rank(ctx, "엔진오일 교체", "ghost", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("reloading the same document leaves results unchanged", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))
		first, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 5)
		require.NoError(t, err)

		require.NoError(t, store.SetDocument("manuals", testManual()))
		second, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 5)
		require.NoError(t, err)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Section.Title, second[i].Section.Title)
			assert.Equal(t, first[i].Score, second[i].Score)
			assert.Equal(t, first[i].Details, second[i].Details)
		}
	})

	t.Run("replacement removes prior document's sections", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		replacement := &core.Document{
			Source: "tucson_2024.json",
			Sections: []core.Section{
				{Number: "3.1", Title: "와이퍼 교체", Content: "와이퍼 블레이드 교체 절차."},
			},
		}
		require.NoError(t, store.SetDocument("manuals", replacement))

		results, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 10)
		require.NoError(t, err)
		for _, result := range results {
			assert.Equal(t, "tucson_2024.json", result.Source)
			assert.NotEqual(t, "엔진오일 교체 방법", result.Section.Title)
		}
	})

	t.Run("sub-scores rounded to three decimals", func(t *testing.T) {
		searcher, store, _ := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		results, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		for _, result := range results {
			for _, sub := range []float64{
				result.Details.Title,
				result.Details.Keyword,
				result.Details.Semantic,
				result.Details.Bonus,
			} {
				assert.Equal(t, math.Round(sub*1000)/1000, sub)
			}
		}
	})
}

func TestRankSemantic(t *testing.T) {
	ctx := context.Background()

	attachVectors := func(t *testing.T, store *storage.Store, doc *core.Document, queryAligned int) {
		t.Helper()
		vectors := make([][]float32, len(doc.Sections))
		for i := range vectors {
			// Orthogonal unit vectors except the aligned section, which
			// matches the direction the query embeds to
			vectors[i] = make([]float32, len(doc.Sections)+1)
			if i == queryAligned {
				vectors[i][0] = 1
			} else {
				vectors[i][i+1] = 1
			}
		}
		require.NoError(t, store.AttachVectors("manuals", doc.Fingerprint(), vectors))
	}

	t.Run("semantic similarity contributes", func(t *testing.T) {
		searcher, store, embedder := newTestSearcher(t)
		doc := testManual()
		require.NoError(t, store.SetDocument("manuals", doc))
		attachVectors(t, store, doc, 1)

		embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
			v := make([]float32, len(doc.Sections)+1)
			v[0] = 1
			return v, nil
		}

		results, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "엔진오일 교체 방법", results[0].Section.Title)
		assert.InDelta(t, 1.0, results[0].Details.Semantic, 1e-9)
	})

	t.Run("embedding failure degrades to lexical scoring", func(t *testing.T) {
		searcher, store, embedder := newTestSearcher(t)
		doc := testManual()
		require.NoError(t, store.SetDocument("manuals", doc))
		attachVectors(t, store, doc, 1)

		embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
			return nil, errors.New("connection refused")
		}

		results, err := searcher.Rank(ctx, "엔진오일 교체 방법", "manuals", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "엔진오일 교체 방법", results[0].Section.Title)
		for _, result := range results {
			assert.Zero(t, result.Details.Semantic)
		}
	})

	t.Run("no query embedding without section vectors", func(t *testing.T) {
		searcher, store, embedder := newTestSearcher(t)
		require.NoError(t, store.SetDocument("manuals", testManual()))

		_, err := searcher.Rank(ctx, "엔진오일 교체", "manuals", 5)
		require.NoError(t, err)
		assert.Zero(t, embedder.CallCount())
	})
}

func TestRankMonitor(t *testing.T) {
	ctx := context.Background()

	searcher, store, _ := newTestSearcher(t)
	doc := testManual()
	require.NoError(t, store.SetDocument("manuals", doc))

	monitor := &recordingMonitor{}
	results, err := searcher.RankWithMonitor(ctx, "엔진오일 교체 방법", "manuals", 3, monitor)
	require.NoError(t, err)

	assert.Equal(t, "엔진오일 교체 방법", monitor.query)
	assert.Equal(t, len(doc.Sections), monitor.scored)
	assert.Equal(t, len(results), monitor.finished)
}

type recordingMonitor struct {
	query    string
	scored   int
	finished int
}

func (m *recordingMonitor) Start(query string)                   { m.query = query }
func (m *recordingMonitor) AfterQueryEmbedding([]float32, error) {}
func (m *recordingMonitor) SectionScored(*core.Section, core.SubScores, float64) {
	m.scored++
}
func (m *recordingMonitor) Finish(results []*core.ScoredSection) { m.finished = len(results) }
