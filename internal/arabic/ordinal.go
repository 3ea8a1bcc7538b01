// Package arabic parses Arabic ordinal and numeric expressions as they
// appear in legal prose, e.g. "المادة السابعة والثلاثون" -> 37.
// Supports 1-99: units, compound 11-19, and "<unit> و<tens>" compounds.
package arabic

import (
	"regexp"
	"strconv"
	"strings"
)

// Alternations are ordered longest-form-first (feminine before masculine,
// عشرون before عشر) so leftmost-first matching never stops short.
const (
	unitAlt = `الأولى|الأول|الحادية|الحادي|الثانية|الثاني|الثالثة|الثالث|الرابعة|الرابع|الخامسة|الخامس|السادسة|السادس|السابعة|السابع|الثامنة|الثامن|التاسعة|التاسع|العاشرة|العاشر`

	tensAlt = `عشرون|عشرين|ثلاثون|ثلاثين|أربعون|أربعين|خمسون|خمسين|ستون|ستين|سبعون|سبعين|ثمانون|ثمانين|تسعون|تسعين|عشرة|عشر`

	teenPrefixAlt = `حادية|حادي|ثانية|ثاني|ثالثة|ثالث|رابعة|رابع|خامسة|خامس|سادسة|سادس|سابعة|سابع|ثامنة|ثامن|تاسعة|تاسع`
)

// OrdinalPattern matches one supported ordinal expression: a 21-99
// compound, an 11-19 compound, a simple unit, or a standalone ten.
var OrdinalPattern = `(?:(?:` + unitAlt + `)\s+و(?:ال)?(?:` + tensAlt + `)|ال(?:` + teenPrefixAlt + `)\s+عشرة?|` + unitAlt + `|(?:ال)?(?:` + tensAlt + `))`

// ArticlePattern matches a full article citation in either numeral or
// ordinal-word form, e.g. "المادة 37" or "المادة الحادي عشر".
var ArticlePattern = `المادة\s+(?:\d+|` + OrdinalPattern + `)`

var (
	articleNumericRe = regexp.MustCompile(`المادة\s+(\d+)`)
	articleRefRe     = regexp.MustCompile(ArticlePattern)
	ordinalRe        = regexp.MustCompile(OrdinalPattern)
	digitsRe         = regexp.MustCompile(`\d+`)
	conjunctionRe    = regexp.MustCompile(`\s+و\s*(?:ال)?`)
)

type ordinalWord struct {
	word  string
	value int
}

// units covers 1-10 in masculine and feminine forms. حادي/حادية is the
// form a unit takes inside compounds (الحادية والعشرون = 21).
var units = []ordinalWord{
	{"الأولى", 1}, {"الأول", 1}, {"الحادية", 1}, {"الحادي", 1},
	{"الثانية", 2}, {"الثاني", 2},
	{"الثالثة", 3}, {"الثالث", 3},
	{"الرابعة", 4}, {"الرابع", 4},
	{"الخامسة", 5}, {"الخامس", 5},
	{"السادسة", 6}, {"السادس", 6},
	{"السابعة", 7}, {"السابع", 7},
	{"الثامنة", 8}, {"الثامن", 8},
	{"التاسعة", 9}, {"التاسع", 9},
	{"العاشرة", 10}, {"العاشر", 10},
}

// tens covers 10-90. The عشرون/عشرين forms come before عشر/عشرة so the
// longer word wins containment checks.
var tens = []ordinalWord{
	{"عشرون", 20}, {"عشرين", 20},
	{"ثلاثون", 30}, {"ثلاثين", 30},
	{"أربعون", 40}, {"أربعين", 40},
	{"خمسون", 50}, {"خمسين", 50},
	{"ستون", 60}, {"ستين", 60},
	{"سبعون", 70}, {"سبعين", 70},
	{"ثمانون", 80}, {"ثمانين", 80},
	{"تسعون", 90}, {"تسعين", 90},
	{"عشرة", 10}, {"عشر", 10},
}

// teenPrefixes resolve 11-19 when followed by عشر/عشرة.
var teenPrefixes = []ordinalWord{
	{"حادي", 1}, {"حادية", 1},
	{"ثاني", 2}, {"ثانية", 2},
	{"ثالث", 3}, {"ثالثة", 3},
	{"رابع", 4}, {"رابعة", 4},
	{"خامس", 5}, {"خامسة", 5},
	{"سادس", 6}, {"سادسة", 6},
	{"سابع", 7}, {"سابعة", 7},
	{"ثامن", 8}, {"ثامنة", 8},
	{"تاسع", 9}, {"تاسعة", 9},
}

// ParseArticleNumber extracts the article number from a text span
// containing an article citation. The decimal numeral form wins over
// ordinal words when both are present. Returns false when no supported
// pattern matches; absence is a normal outcome, not an error.
func ParseArticleNumber(text string) (string, bool) {
	if m := articleNumericRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}

	ref, ok := FindArticleReference(text)
	if !ok {
		return "", false
	}
	ordinal := strings.TrimSpace(strings.TrimPrefix(ref, "المادة"))
	if n, ok := parseOrdinal(ordinal); ok {
		return strconv.Itoa(n), true
	}
	return "", false
}

// FindArticleReference returns the first full article citation found in
// text, in its original Arabic form, e.g. "المادة السابعة والثلاثون".
func FindArticleReference(text string) (string, bool) {
	m := articleRefRe.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.Join(strings.Fields(m), " "), true
}

// ExtractNumber is the loose variant of ParseArticleNumber: it is not
// anchored to the article marker and searches only the first maxRunes
// of text (pass 0 for no bound). Numerals are tried before ordinals.
func ExtractNumber(text string, maxRunes int) (string, bool) {
	if maxRunes > 0 {
		text = truncateRunes(text, maxRunes)
	}

	if m := digitsRe.FindString(text); m != "" {
		return m, true
	}

	for _, cand := range ordinalRe.FindAllString(text, -1) {
		if n, ok := parseOrdinal(cand); ok {
			return strconv.Itoa(n), true
		}
	}
	return "", false
}

// parseOrdinal resolves a bare ordinal expression to its integer value.
func parseOrdinal(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	// 11-19: unit prefix plus عشر/عشرة, excluding the عشرون/عشرين tens.
	if strings.Contains(text, "عشر") &&
		!strings.Contains(text, "عشرون") && !strings.Contains(text, "عشرين") {
		for _, p := range teenPrefixes {
			if strings.Contains(text, p.word) {
				return 10 + p.value, true
			}
		}
	}

	// 21-99: "<unit> و<tens>".
	if parts := conjunctionRe.Split(text, -1); len(parts) == 2 {
		unitVal, unitOK := 0, false
		for _, u := range units {
			if strings.Contains(parts[0], u.word) {
				unitVal, unitOK = u.value, true
				break
			}
		}
		tensVal, tensOK := 0, false
		for _, tn := range tens {
			if strings.Contains(parts[1], tn.word) {
				tensVal, tensOK = tn.value, true
				break
			}
		}
		if unitOK && tensOK {
			return unitVal + tensVal, true
		}
	}

	// 1-10.
	for _, u := range units {
		if text == u.word || strings.HasPrefix(text, u.word) {
			return u.value, true
		}
	}

	// Standalone tens: 10, 20, ..., 90.
	for _, tn := range tens {
		if strings.Contains(text, tn.word) {
			return tn.value, true
		}
	}

	return 0, false
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
