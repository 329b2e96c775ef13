package analytics

import (
	"regexp"
	"sort"
	"strings"

	"campaign_pulse/internal/domain"
	"campaign_pulse/internal/textutil"
)

// Tokens keep only folded letters; punctuation, digits and emoji are removed.
var nonLetters = regexp.MustCompile(`[^a-z\s]`)

const (
	minTokenLength = 3
	minPhraseCount = 2
)

// buildWordCloud counts two-word phrases and single words across the comment
// texts. Phrases seen at least twice rank first, then single words fill the
// remaining slots, skipping words already covered by a ranked phrase.
func buildWordCloud(texts []string, limit int) *domain.WordCloud {
	unigrams := make(map[string]int)
	bigrams := make(map[string]int)

	for _, text := range texts {
		tokens := tokenize(text)
		for i, token := range tokens {
			unigrams[token]++
			if i+1 < len(tokens) {
				bigrams[token+" "+tokens[i+1]]++
			}
		}
	}

	entries := make([]domain.WordEntry, 0, limit)
	for _, entry := range sortedEntries(bigrams) {
		if entry.Count < minPhraseCount || len(entries) == limit {
			break
		}
		entries = append(entries, entry)
	}

	covered := make(map[string]bool)
	for _, entry := range entries {
		for _, part := range strings.Fields(entry.Word) {
			covered[part] = true
		}
	}

	for _, entry := range sortedEntries(unigrams) {
		if entry.Count < minPhraseCount || len(entries) == limit {
			break
		}
		if covered[entry.Word] {
			continue
		}
		entries = append(entries, entry)
	}

	return &domain.WordCloud{Words: entries, Total: len(entries)}
}

// tokenize folds the text, strips everything but letters and drops stopwords
// and short fragments.
func tokenize(text string) []string {
	cleaned := nonLetters.ReplaceAllString(textutil.Fold(text), "")

	var tokens []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minTokenLength || stopWords[token] {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}

func sortedEntries(counts map[string]int) []domain.WordEntry {
	entries := make([]domain.WordEntry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, domain.WordEntry{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}
