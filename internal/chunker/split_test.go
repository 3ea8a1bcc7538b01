package chunker

import (
	"strings"
	"testing"
)

func testChunker(t *testing.T, size, overlap int) *Chunker {
	t.Helper()
	c, err := New(Config{MaxChunkSize: size, ChunkOverlap: overlap}, nil, discardLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestSplitLargeBlock_GroupsParagraphsUnderLimit(t *testing.T) {
	c := testChunker(t, 200, 40)

	para := strings.TrimSpace(strings.Repeat("كلمة ", 16)) // 79 runes
	content := para + "\n\n" + para + "\n\n" + para + "\n\n" + para

	parts := c.splitLargeBlock(content)
	if len(parts) < 2 {
		t.Fatalf("expected multiple groups, got %d", len(parts))
	}
	for i, p := range parts {
		if runeLen(p) > c.maxChunkSize {
			t.Errorf("group %d has %d runes, limit %d", i, runeLen(p), c.maxChunkSize)
		}
	}
}

func TestSplitLargeBlock_CarriesOverlapIntoNextGroup(t *testing.T) {
	c := testChunker(t, 120, 30)

	first := strings.TrimSpace(strings.Repeat("أول ", 25))
	second := strings.TrimSpace(strings.Repeat("ثان ", 25))

	parts := c.splitLargeBlock(first + "\n\n" + second)
	if len(parts) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(parts))
	}
	tail := tailRunes(first, c.chunkOverlap)
	if !strings.HasPrefix(parts[1], tail) {
		t.Errorf("second group does not start with the overlap tail of the first:\n%q", parts[1])
	}
}

func TestSplitLargeBlock_SentenceFallbackForSingleParagraph(t *testing.T) {
	c := testChunker(t, 100, 20)

	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString("هذه جملة كاملة تنتهي بنقطة واضحة. ")
	}
	parts := c.splitLargeBlock(strings.TrimSpace(b.String()))
	if len(parts) < 2 {
		t.Fatalf("expected sentence-level split, got %d part(s)", len(parts))
	}
	// Sentence grouping stays near the limit; the trailing overlap may
	// push a part past it by up to three sentences.
	for i, p := range parts {
		if runeLen(p) > 2*c.maxChunkSize {
			t.Errorf("part %d has %d runes, limit %d", i, runeLen(p), c.maxChunkSize)
		}
	}
}

func TestSplitLargeBlock_UnsplittableRunReturnedWhole(t *testing.T) {
	c := testChunker(t, 50, 10)

	run := strings.Repeat("ب", 300) // no spaces, no terminators
	parts := c.splitLargeBlock(run)
	if len(parts) != 1 || parts[0] != run {
		t.Fatalf("expected the run back intact, got %d part(s)", len(parts))
	}
}

func TestSplitBySentences_KeepsTerminators(t *testing.T) {
	c := testChunker(t, 1500, 200)

	parts := c.splitBySentences("الجملة الأولى. الجملة الثانية؟ الجملة الثالثة.")
	if len(parts) != 1 {
		t.Fatalf("expected one chunk, got %d", len(parts))
	}
	for _, term := range []string{".", "؟"} {
		if !strings.Contains(parts[0], term) {
			t.Errorf("terminator %q lost: %q", term, parts[0])
		}
	}
}

func TestSplitSentences_ArabicQuestionMark(t *testing.T) {
	got := splitSentences("هل يجوز ذلك؟ نعم يجوز.")
	if len(got) != 2 {
		t.Fatalf("got %d sentences: %q", len(got), got)
	}
	if got[0] != "هل يجوز ذلك؟" {
		t.Errorf("first sentence: %q", got[0])
	}
}

func TestSplitParagraphs_DropsBlankEntries(t *testing.T) {
	got := splitParagraphs("الأولى\n\n\n  \n\nالثانية\n\n")
	if len(got) != 2 || got[0] != "الأولى" || got[1] != "الثانية" {
		t.Fatalf("got %q", got)
	}
}

func TestTailRunes(t *testing.T) {
	if got := tailRunes("مرحبا", 2); got != "با" {
		t.Errorf("got %q", got)
	}
	if got := tailRunes("مرحبا", 10); got != "مرحبا" {
		t.Errorf("got %q", got)
	}
	if got := tailRunes("مرحبا", 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestPrefixRunes(t *testing.T) {
	if got := prefixRunes("مرحبا بالعالم", 5); got != "مرحبا" {
		t.Errorf("got %q", got)
	}
	if got := prefixRunes("نص", 10); got != "نص" {
		t.Errorf("got %q", got)
	}
}
