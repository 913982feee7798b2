package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobidoc/manualqa/core"
)

func TestCacheRoundtrip(t *testing.T) {
	doc := &core.Document{
		Source: "manual.json",
		Sections: []core.Section{
			{
				Number:   "4.2",
				Title:    "엔진오일 교체",
				Content:  "엔진오일 교체 절차.",
				Keywords: []string{"엔진오일", "교체"},
				Pages:    core.PageRange{Start: 214, End: 218},
				Subsections: []core.Subsection{
					{Title: "준비물", Content: "오일 필터, 규정 오일."},
				},
			},
			{
				Number:   "4.5",
				Title:    "타이어 공기압 점검",
				Content:  "타이어 공기압 점검 절차.",
				Keywords: []string{"타이어", "공기압"},
				Pages:    core.PageRange{Start: 230, End: 233},
				Subsections: []core.Subsection{
					{Title: "규정 공기압", Content: "운전석 도어 라벨 참조."},
				},
			},
		},
	}
	cache := &core.EmbeddingCache{
		SchemaVersion: core.CacheSchemaVersion,
		Collection:    "manuals",
		Fingerprint:   doc.Fingerprint(),
		Sections:      doc.Sections,
		Vectors: [][]float32{
			{0.1, -0.2, 0.3},
			{0.4, 0.5, -0.6},
		},
	}

	data := MarshalCache(cache)
	require.NotEmpty(t, data)

	got, err := UnmarshalCache(data)
	require.NoError(t, err)
	assert.Equal(t, cache, got)
}

func TestUnmarshalCacheCorrupt(t *testing.T) {
	_, err := UnmarshalCache([]byte{0xff})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
