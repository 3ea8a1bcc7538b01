package keywords

import (
	"context"
	"strings"
	"testing"
)

func TestFrequency_ShortTextReturnsNothing(t *testing.T) {
	f := NewFrequency(5)
	if got := f.Extract(context.Background(), "قصير"); got != nil {
		t.Errorf("expected nil for short text, got %v", got)
	}
}

func TestFrequency_MostFrequentWordsFirst(t *testing.T) {
	f := NewFrequency(3)
	text := "إجازة إجازة إجازة راتب راتب موظف حقوق واجبات التزامات"
	got := f.Extract(context.Background(), text)

	if len(got) != 3 {
		t.Fatalf("expected 3 keywords, got %d: %v", len(got), got)
	}
	if got[0] != "إجازة" {
		t.Errorf("expected most frequent word first, got %q", got[0])
	}
	if got[1] != "راتب" {
		t.Errorf("expected راتب second, got %q", got[1])
	}
}

func TestFrequency_BigramsFillRemainder(t *testing.T) {
	// Only four distinct words, so the fifth slot must come from a
	// bigram.
	f := NewFrequency(5)
	text := "نظام العمل نظام العمل نظام العمل يحدد الحقوق"
	got := f.Extract(context.Background(), text)

	if len(got) != 5 {
		t.Fatalf("expected 5 keywords, got %d: %v", len(got), got)
	}
	foundBigram := false
	for _, kw := range got {
		if strings.Contains(kw, " ") {
			foundBigram = true
		}
	}
	if !foundBigram {
		t.Errorf("expected a bigram among keywords, got %v", got)
	}
}

func TestFrequency_Deterministic(t *testing.T) {
	f := NewFrequency(5)
	text := "يستحق الموظف إجازة اعتيادية ويستحق العامل أجره كاملا حسب نظام العمل المعتمد"
	first := f.Extract(context.Background(), text)
	for i := 0; i < 10; i++ {
		again := f.Extract(context.Background(), text)
		if strings.Join(again, "|") != strings.Join(first, "|") {
			t.Fatalf("output changed between runs: %v vs %v", again, first)
		}
	}
}

func TestFrequency_IgnoresNonArabicTokens(t *testing.T) {
	f := NewFrequency(5)
	text := "chapter 12 الموظف يستحق الإجازة السنوية section الموظف"
	got := f.Extract(context.Background(), text)
	for _, kw := range got {
		if strings.ContainsAny(kw, "abcdefghijklmnopqrstuvwxyz0123456789") {
			t.Errorf("non-Arabic token leaked into keywords: %q", kw)
		}
	}
	if len(got) == 0 || got[0] != "الموظف" {
		t.Errorf("expected الموظف first, got %v", got)
	}
}
