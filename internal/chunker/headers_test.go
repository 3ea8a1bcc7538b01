package chunker

import (
	"strings"
	"testing"
)

func TestSplitByHeaders_ArticleBlocks(t *testing.T) {
	text := "المادة 1\nنص المادة الأولى هنا.\nالمادة 2\nنص المادة الثانية هنا."
	blocks := splitByHeaders(text, 1500)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].header != "المادة 1" {
		t.Errorf("first header: got %q", blocks[0].header)
	}
	if blocks[1].header != "المادة 2" {
		t.Errorf("second header: got %q", blocks[1].header)
	}
	if !strings.Contains(blocks[0].body, "نص المادة الأولى") {
		t.Errorf("first body: got %q", blocks[0].body)
	}
}

func TestSplitByHeaders_OrdinalArticleHeader(t *testing.T) {
	text := "المادة السابعة والثلاثون\nأحكام هذه المادة تفصيلية."
	blocks := splitByHeaders(text, 1500)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].header != "المادة السابعة والثلاثون" {
		t.Errorf("got header %q", blocks[0].header)
	}
}

func TestSplitByHeaders_MarkerMidSentenceIgnored(t *testing.T) {
	// The in-sentence citation must not start a new block.
	text := "الباب الأول\nيشار إلى المادة 5 ضمن هذا النص دون أن تكون عنوانا."
	blocks := splitByHeaders(text, 1500)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %+v", len(blocks), blocks)
	}
}

func TestSplitByHeaders_HeaderAtEndOfTextIgnored(t *testing.T) {
	// A trailing marker with no following text is not a header.
	text := "نص تمهيدي قصير.\nالمادة 9"
	blocks := splitByHeaders(text, 1500)
	for _, b := range blocks {
		if b.header != "" {
			t.Errorf("expected no headers, got %q", b.header)
		}
	}
}

func TestSplitByHeaders_PreambleKept(t *testing.T) {
	text := "مقدمة قبل أول عنوان.\nالمادة 1\nنص المادة."
	blocks := splitByHeaders(text, 1500)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].header != "" || !strings.Contains(blocks[0].body, "مقدمة") {
		t.Errorf("expected headerless preamble first, got %+v", blocks[0])
	}
}

func TestSplitByHeaders_NumberedSections(t *testing.T) {
	text := "1. التقديم على الإجازة\nتفاصيل التقديم.\n2) الاعتماد\nتفاصيل الاعتماد."
	blocks := splitByHeaders(text, 1500)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
}

func TestSplitByHeaders_NoHeadersShortText(t *testing.T) {
	text := "نص قصير دون أي عناوين."
	blocks := splitByHeaders(text, 1500)
	if len(blocks) != 1 || blocks[0].header != "" || blocks[0].body != text {
		t.Errorf("expected the whole text as one headerless block, got %+v", blocks)
	}
}

func TestSplitByHeaders_NoHeadersLongTextSplitsParagraphs(t *testing.T) {
	para := strings.Repeat("كلمة ", 30)
	text := strings.TrimSpace(strings.Repeat(para+"\n\n", 10))
	blocks := splitByHeaders(text, 200)

	if len(blocks) < 2 {
		t.Fatalf("expected multiple blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		if runeLen(b.body) > 200 {
			t.Errorf("block %d exceeds the size bound: %d runes", i, runeLen(b.body))
		}
	}
}

func TestSplitByHeaders_WidensHeaderToTitledLine(t *testing.T) {
	text := "الباب الأول: التعيين والترقية\nتسري أحكام هذا الباب على الجميع."
	blocks := splitByHeaders(text, 1500)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].header != "الباب الأول: التعيين والترقية" {
		t.Errorf("got header %q", blocks[0].header)
	}
	if strings.Contains(blocks[0].body, "الباب الأول") {
		t.Errorf("header text leaked into body: %q", blocks[0].body)
	}
}

func TestSplitByHeaders_HeaderLineDirectlyAboveNext(t *testing.T) {
	// A part line with no body of its own, sitting right above the next
	// header, must still become a full header rather than a bare marker.
	text := "الباب الثاني: التوظيف\nالمادة 3\nيكون التعيين بقرار من الوزير."
	blocks := splitByHeaders(text, 1500)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].header != "الباب الثاني: التوظيف" {
		t.Errorf("part header: got %q", blocks[0].header)
	}
	if blocks[0].body != "" {
		t.Errorf("part body: got %q", blocks[0].body)
	}
	if blocks[1].header != "المادة 3" {
		t.Errorf("article header: got %q", blocks[1].header)
	}
}

func TestStripHeaderDuplication(t *testing.T) {
	body := "المادة 5: يستحق الموظف إجازة."
	got := stripHeaderDuplication("المادة 5", body)
	if got != "يستحق الموظف إجازة." {
		t.Errorf("got %q", got)
	}
}

func TestStripHeaderDuplication_NoHeader(t *testing.T) {
	body := "نص كما هو."
	if got := stripHeaderDuplication("", body); got != body {
		t.Errorf("got %q", got)
	}
}

func TestStripHeaderDuplication_HeaderNotAtStart(t *testing.T) {
	body := "نص يذكر المادة 5 لاحقا."
	if got := stripHeaderDuplication("المادة 5", body); got != body {
		t.Errorf("got %q", got)
	}
}
