package search

import (
	"strings"
	"unicode/utf8"
)

// queryTokens lowercases the query, strips question and exclamation
// marks, and splits on whitespace.
func queryTokens(query string) []string {
	cleaned := strings.ToLower(query)
	cleaned = strings.ReplaceAll(cleaned, "?", "")
	cleaned = strings.ReplaceAll(cleaned, "!", "")
	return strings.Fields(cleaned)
}

// titleTokens lowercases the title and splits on whitespace.
func titleTokens(title string) []string {
	return strings.Fields(strings.ToLower(title))
}

// tokenSet deduplicates tokens.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// intersectionCount returns the number of tokens present in both sets.
func intersectionCount(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			count++
		}
	}
	return count
}

// runeLen counts characters, not bytes. Korean text is three bytes per
// rune in UTF-8, so byte lengths would skew every length threshold.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// countContained returns how many of the given substrings occur in s.
func countContained(s string, subs []string) int {
	count := 0
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			count++
		}
	}
	return count
}

// inCluster reports whether word is the cluster key or one of its synonyms.
func inCluster(word, key string, synonyms []string) bool {
	if word == key {
		return true
	}
	for _, syn := range synonyms {
		if word == syn {
			return true
		}
	}
	return false
}
