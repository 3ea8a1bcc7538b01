package chunker

import "unicode/utf8"

// charsPerToken is the Arabic heuristic: multilingual BPE vocabularies
// land around 2-3 characters per token for Arabic prose.
const charsPerToken = 2.5

// EstimateTokens gives a rough token count for sizing chunks against
// embedding-model input limits. Exact tokenization is not required.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	tokens := int(float64(n) / charsPerToken)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}
