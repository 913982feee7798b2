package search

import (
	"math"
	"strings"

	"github.com/mobidoc/manualqa/core"
)

// Lexical scoring weights and caps. These are fixed design constants:
// title relevance dominates the total score and the remaining signals
// refine the ordering.
const (
	partialMatchWeight  = 0.6
	directMatchWeight   = 1.0
	combinationStep     = 0.5
	combinationCap      = 2.0
	titleQualityBoost   = 1.2
	nearFullMatchBoost  = 1.3
	titleScoreCap       = 2.5
	keywordMatchFull    = 1.0
	keywordMatchPartial = 0.5
	keywordSynonymBonus = 0.7
	keywordScoreDivisor = 1.5
)

// TitleScore scores how well the query matches a section title.
// The result is in [0, 2.5]. An empty title or a query with no tokens
// scores 0. The score combines exact token intersection, partial
// (substring) token matches, topic-cluster matches, and a topic-action
// combination bonus, normalized by query token count.
func TitleScore(query, title string) float64 {
	if title == "" {
		return 0
	}

	qSet := tokenSet(queryTokens(query))
	tSet := tokenSet(titleTokens(title))
	if len(qSet) == 0 {
		return 0
	}

	// 1. Exact token matches
	exact := float64(intersectionCount(qSet, tSet))

	// 2. Partial (substring) matches between tokens of length >= 2
	partial := 0.0
	for q := range qSet {
		for t := range tSet {
			if runeLen(q) >= 2 && runeLen(t) >= 2 {
				if strings.Contains(t, q) || strings.Contains(q, t) {
					partial += partialMatchWeight
				}
			}
		}
	}

	// 3. Topic-cluster matches: query token and title token resolving
	// to the same automotive topic cluster
	direct := 0.0
	for q := range qSet {
		for key, synonyms := range coreKeywords {
			if !inCluster(q, key, synonyms) {
				continue
			}
			for t := range tSet {
				if inCluster(t, key, synonyms) {
					direct += directMatchWeight
				}
			}
		}
	}

	// 4. Topic-action combinations: title mentions a topic, query asks
	// for one of its associated actions
	combination := 0.0
	titleLower := strings.ToLower(title)
	queryLower := strings.ToLower(query)
	for topic, actions := range topicActions {
		if !strings.Contains(titleLower, topic) {
			continue
		}
		if matching := countContained(queryLower, actions); matching > 0 {
			combination += math.Min(float64(matching)*combinationStep, combinationCap)
		}
	}

	base := (exact + partial + direct + combination) / math.Max(float64(len(qSet)), 1)

	// Concise titles that already match well are usually the exact
	// section the user wants
	if n := len(strings.Fields(title)); n >= 2 && n <= 4 && base > 0.5 {
		base *= titleQualityBoost
	}

	// Near-full containment of the query in the title
	if intersectionCount(qSet, tSet) >= max(len(qSet)-1, 1) {
		base *= nearFullMatchBoost
	}

	return math.Min(base, titleScoreCap)
}

// KeywordScore scores the query against a section's keyword list.
// The result is in [0, 1]. Each keyword contributes 1.0 for a literal
// occurrence in the query, 0.5 for a partial token match, and 0.7 per
// synonym-cluster match with a query token. An empty keyword list
// scores 0.
func KeywordScore(query string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	queryLower := strings.ToLower(query)
	queryWords := strings.Fields(queryLower)

	matches := 0.0
	for _, keyword := range keywords {
		keywordLower := strings.ToLower(keyword)
		if strings.Contains(queryLower, keywordLower) {
			matches += keywordMatchFull
			continue
		}
		for _, word := range queryWords {
			if runeLen(word) >= 2 && (strings.Contains(keywordLower, word) || strings.Contains(word, keywordLower)) {
				matches += keywordMatchPartial
				break
			}
		}
	}

	// Synonym matches: keyword and query token in the same cluster
	for _, keyword := range keywords {
		keywordLower := strings.ToLower(keyword)
		for _, word := range queryWords {
			for key, synonyms := range synonymClusters {
				if inCluster(keywordLower, key, synonyms) && inCluster(word, key, synonyms) {
					matches += keywordSynonymBonus
				}
			}
		}
	}

	return math.Min(matches/keywordScoreDivisor, 1.0)
}

// BonusScore computes heuristic bonuses from a section's overall shape.
// The result is in [0, 1]. Signals: topic-action relevance, enumerated
// procedural steps when the query asks "how", density of maintenance
// vocabulary in the content, a concise title, and content of a length
// that usually means one complete procedure.
func BonusScore(query string, section *core.Section) float64 {
	bonus := 0.0
	content := strings.ToLower(section.Content)
	title := strings.ToLower(section.Title)
	queryLower := strings.ToLower(query)

	// Topic-action relevance, capped per topic entry
	for _, tb := range bonusTopics {
		if !containsAny(title, tb.topics) {
			continue
		}
		if matching := countContained(queryLower, tb.actions); matching > 0 {
			bonus += math.Min(float64(matching)*0.15, 0.3)
		}
	}

	// Procedural content: queries asking for steps favor sections with
	// enumerated instructions
	if containsAny(queryLower, proceduralCues) {
		steps := len(stepPattern.FindAllString(content, -1))
		switch {
		case steps >= 3:
			bonus += 0.2
		case steps >= 1:
			bonus += 0.1
		}
	}

	// Maintenance vocabulary density
	density := 0
	for _, word := range importantWords {
		if strings.Contains(content, word) {
			density++
		}
	}
	bonus += math.Min(float64(density)*0.03, 0.15)

	// Concise title
	if n := len(strings.Fields(section.Title)); n >= 2 && n <= 5 {
		bonus += 0.1
	}

	// Content length: one complete procedure usually fits in 200-2000
	// characters; much longer sections tend to be catch-all chapters
	switch clen := runeLen(section.Content); {
	case clen >= 200 && clen <= 2000:
		bonus += 0.1
	case clen > 2000:
		bonus -= 0.05
	}

	if bonus < 0 {
		return 0
	}
	return math.Min(bonus, 1.0)
}
