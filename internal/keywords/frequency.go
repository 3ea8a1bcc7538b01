package keywords

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// arabicWordRe matches contiguous Arabic-script tokens of 2+ letters.
var arabicWordRe = regexp.MustCompile(`[\p{Arabic}]{2,}`)

// Frequency is the deterministic fallback extractor: most frequent
// Arabic words first, then adjacent bigrams to fill the remainder.
type Frequency struct {
	topN int
}

func NewFrequency(topN int) *Frequency {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Frequency{topN: topN}
}

func (f *Frequency) Extract(_ context.Context, text string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextRunes {
		return nil
	}

	words := arabicWordRe.FindAllString(text, -1)
	keywords := topFrequent(words, f.topN)

	if len(keywords) < f.topN && len(words) > 1 {
		bigrams := make([]string, 0, len(words)-1)
		for i := 0; i < len(words)-1; i++ {
			bigrams = append(bigrams, words[i]+" "+words[i+1])
		}
		seen := make(map[string]bool, len(keywords))
		for _, kw := range keywords {
			seen[kw] = true
		}
		for _, bg := range topFrequent(bigrams, f.topN-len(keywords)) {
			if !seen[bg] {
				keywords = append(keywords, bg)
			}
		}
	}

	return keywords
}

// topFrequent returns up to n distinct tokens ordered by count
// descending, first occurrence breaking ties for stable output.
func topFrequent(tokens []string, n int) []string {
	if n <= 0 || len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, tok := range tokens {
		if counts[tok] == 0 {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
