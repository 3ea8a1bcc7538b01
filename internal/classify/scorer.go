// Package classify assigns category and target-audience labels to
// document chunks using weighted phrase scoring. No model, no I/O:
// identical input always yields identical labels.
package classify

import "strings"

type weightedPhrase struct {
	phrase string
	weight float64
}

type labelKeywords struct {
	label   string
	phrases []weightedPhrase
}

// Label tables are ordered slices: scoring walks them in declaration
// order and a later label must score strictly higher to win, so ties
// resolve to the first-declared label.
var categories = []labelKeywords{
	{"الإجازات", []weightedPhrase{ // Leave
		{"إجازة مرضية", 3.0}, {"إجازة أمومة", 3.0}, {"إجازة زواج", 3.0},
		{"إجازة اعتيادية", 2.5}, {"الإجازات", 2.5}, {"طلب إجازة", 2.5},
		{"إجازة", 2.0}, {"إجازات", 2.0},
	}},
	{"الحقوق المالية", []weightedPhrase{ // Financial Rights
		{"حقوق مالية", 3.5}, {"مستحقات", 3.0},
		{"راتب", 2.5}, {"الراتب", 2.5}, {"بدل", 2.5}, {"البدل", 2.5},
		{"مكافأة", 2.5}, {"المكافأة", 2.5}, {"علاوة", 2.5},
		{"أجر", 2.0}, {"أجور", 2.0},
	}},
	{"الانضباط", []weightedPhrase{ // Discipline
		{"انضباط", 3.5}, {"الانضباط", 3.5},
		{"عقوبة", 3.0}, {"العقوبة", 3.0}, {"جزاء", 3.0}, {"تأديب", 3.0},
		{"مخالفة", 2.5}, {"عقوبات", 2.5},
	}},
	{"التوظيف", []weightedPhrase{ // Recruitment
		{"تعيين", 3.0}, {"التعيين", 3.0}, {"توظيف", 3.0}, {"التوظيف", 3.0},
		{"اختيار", 2.5}, {"ترشيح", 2.5},
		{"قبول", 2.0},
	}},
	{"الترقية", []weightedPhrase{ // Promotion
		{"ترقية", 3.0}, {"الترقية", 3.0}, {"ترقيات", 3.0}, {"الترقيات", 3.0},
		{"ترقي", 2.5},
	}},
	{"الأداء", []weightedPhrase{ // Performance
		{"تقييم الأداء", 3.5},
		{"أداء", 2.5}, {"الأداء", 2.5}, {"تقييم", 2.5}, {"التقييم", 2.5}, {"كفاءة", 2.5},
		{"إنجاز", 2.0},
	}},
}

var audiences = []labelKeywords{
	{"المهندسون", []weightedPhrase{ // Engineers
		{"المهندسين", 3.0}, {"المهندس", 2.5}, {"هندسي", 2.5}, {"الهندسة", 2.5},
		{"مهندس", 2.0}, {"هندسة", 2.0},
	}},
	{"الموظفون المدنيون", []weightedPhrase{ // Civil Servants
		{"الموظفين", 3.0}, {"الموظف", 2.5},
		{"موظف", 2.0}, {"موظفين", 2.0}, {"موظفي", 2.0},
	}},
	{"المتعاقدون", []weightedPhrase{ // Contractors
		{"المتعاقدين", 3.0}, {"المتعاقد", 2.5},
		{"متعاقد", 2.0}, {"متعاقدين", 2.0},
		{"عقد", 1.5}, {"العقد", 1.5},
	}},
	{"العمال", []weightedPhrase{ // Labourers
		{"العمال", 3.0}, {"العامل", 2.5},
		{"عامل", 2.0}, {"عمال", 2.0},
		{"أجير", 2.0}, {"أجراء", 2.0}, {"الأجير", 2.0}, {"الأجراء", 2.0},
	}},
}

const (
	minScore = 1.0

	// Title hits are stronger signals than body occurrences.
	categoryTitleBoost = 1.5
	audienceTitleBoost = 2.0
)

// Category returns the best-scoring category label for the content, or
// "" when nothing scores above the threshold. Unclassified is a normal
// outcome.
func Category(content, title string) string {
	return bestLabel(categories, content, title, categoryTitleBoost)
}

// TargetAudience returns the best-scoring audience label, or "".
func TargetAudience(content, title string) string {
	return bestLabel(audiences, content, title, audienceTitleBoost)
}

func bestLabel(table []labelKeywords, content, title string, titleBoost float64) string {
	var best string
	var bestScore float64

	for _, lk := range table {
		var score float64
		for _, wp := range lk.phrases {
			if title != "" && strings.Contains(title, wp.phrase) {
				score += wp.weight * titleBoost
			}
			if n := strings.Count(content, wp.phrase); n > 0 {
				score += wp.weight * float64(n)
			}
		}
		if score > bestScore {
			best = lk.label
			bestScore = score
		}
	}

	if bestScore < minScore {
		return ""
	}
	return best
}
