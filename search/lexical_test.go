package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobidoc/manualqa/core"
)

func TestTitleScore(t *testing.T) {
	t.Run("exact title match scores high", func(t *testing.T) {
		score := TitleScore("엔진오일 교체 방법", "엔진오일 교체 방법")
		assert.Greater(t, score, 2.0)
		assert.LessOrEqual(t, score, titleScoreCap)
	})

	t.Run("empty title scores zero", func(t *testing.T) {
		assert.Zero(t, TitleScore("엔진오일 교체", ""))
	})

	t.Run("empty query scores zero", func(t *testing.T) {
		assert.Zero(t, TitleScore("", "엔진오일 교체 방법"))
		assert.Zero(t, TitleScore("  ?! ", "엔진오일 교체 방법"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		lower := TitleScore("engine oil change", "Engine Oil Change")
		upper := TitleScore("ENGINE OIL CHANGE", "engine oil change")
		assert.Equal(t, lower, upper)
	})

	t.Run("token order does not matter", func(t *testing.T) {
		a := TitleScore("교체 방법 엔진오일", "엔진오일 교체 방법")
		b := TitleScore("엔진오일 교체 방법", "엔진오일 교체 방법")
		assert.Equal(t, a, b)
	})

	t.Run("unrelated title scores lower than a matching one", func(t *testing.T) {
		matching := TitleScore("엔진오일 교체 방법", "엔진오일 교체 방법")
		unrelated := TitleScore("엔진오일 교체 방법", "오디오 시스템 설정")
		assert.Greater(t, matching, unrelated)
	})

	t.Run("partial containment contributes", func(t *testing.T) {
		// "엔진오일" contains the query token "오일"
		score := TitleScore("오일 점검", "엔진오일 점검 및 보충")
		assert.Greater(t, score, 0.0)
	})

	t.Run("capped at maximum", func(t *testing.T) {
		// A single-token query against a title stuffed with matches
		// drives the raw score far past the cap
		score := TitleScore("엔진오일", "엔진오일 엔진오일 엔진오일 엔진오일 엔진오일 엔진오일")
		assert.LessOrEqual(t, score, titleScoreCap)
	})
}

func TestKeywordScore(t *testing.T) {
	t.Run("literal keyword occurrence", func(t *testing.T) {
		score := KeywordScore("엔진오일 교체 방법", []string{"엔진오일", "교체"})
		assert.Equal(t, 1.0, score)
	})

	t.Run("empty keyword list scores zero", func(t *testing.T) {
		assert.Zero(t, KeywordScore("엔진오일 교체", nil))
		assert.Zero(t, KeywordScore("엔진오일 교체", []string{}))
	})

	t.Run("synonym cluster match", func(t *testing.T) {
		// "교환" and the keyword "교체" share a synonym cluster
		score := KeywordScore("엔진오일 교환", []string{"교체"})
		assert.Greater(t, score, 0.0)
	})

	t.Run("unrelated keywords score zero", func(t *testing.T) {
		assert.Zero(t, KeywordScore("엔진오일 교체", []string{"블루투스", "내비게이션"}))
	})

	t.Run("clamped to one", func(t *testing.T) {
		score := KeywordScore("엔진오일 교체 점검 확인 보충",
			[]string{"엔진오일", "교체", "점검", "확인", "보충"})
		assert.Equal(t, 1.0, score)
	})
}

func TestBonusScore(t *testing.T) {
	procedural := &core.Section{
		Title: "엔진오일 교체 방법",
		Content: "엔진오일 교체 절차. " +
			"1. 차량을 평평한 곳에 주차하고 엔진을 끕니다. " +
			"2. 오일 팬 아래 드레인 플러그를 풀어 오일을 배출합니다. " +
			"3. 새 오일 필터를 장착하고 규정량의 엔진오일을 주입합니다. " +
			strings.Repeat("엔진오일 레벨 게이지로 오일 양을 점검하고 필요하면 보충합니다. ", 5),
	}

	t.Run("procedural section with how query", func(t *testing.T) {
		score := BonusScore("엔진오일 교체 방법", procedural)
		// topic bonus + step bonus + density + concise title + length
		assert.Greater(t, score, 0.4)
		assert.LessOrEqual(t, score, 1.0)
	})

	t.Run("no step bonus without procedural cue", func(t *testing.T) {
		with := BonusScore("엔진오일 교체 방법", procedural)
		without := BonusScore("엔진오일 교체", procedural)
		assert.Greater(t, with, without)
	})

	t.Run("very long content penalized but never negative", func(t *testing.T) {
		long := &core.Section{
			Title:   "부록",
			Content: strings.Repeat("가", 3000),
		}
		assert.Zero(t, BonusScore("엔진오일 교체", long))
	})

	t.Run("case insensitive", func(t *testing.T) {
		section := &core.Section{Title: "Engine Oil Change", Content: "Replace the engine oil filter."}
		lower := BonusScore("engine oil change procedure", section)
		upper := BonusScore("ENGINE OIL CHANGE PROCEDURE", section)
		assert.Equal(t, lower, upper)
	})

	t.Run("short unrelated section", func(t *testing.T) {
		section := &core.Section{Title: "개요", Content: "이 장은 개요입니다."}
		score := BonusScore("엔진오일 교체", section)
		assert.Less(t, score, 0.2)
	})
}
