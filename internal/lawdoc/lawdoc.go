package lawdoc

// ItemType identifies the kind of numbered item a chunk covers.
type ItemType string

const (
	ItemArticle ItemType = "article" // المادة
	ItemSection ItemType = "section" // generic numbered section
)

// Chunk is a sized segment of a legal document with extracted metadata,
// ready for embedding and indexing. Optional fields hold their zero
// value when absent. A chunk is never mutated after it is emitted.
type Chunk struct {
	ID      string // assigned at assembly time
	Content string // chunk text including document title and header context

	DocumentName  string // source file name, verbatim
	DocumentTitle string // heuristic title from the document head, if any
	ChunkIndex    int    // position in the document's chunk sequence, from 0

	ItemNumber       string   // article or section number as a decimal string
	ItemType         ItemType // what ItemNumber refers to
	ArticleReference string   // canonical Arabic citation, e.g. "المادة 37"
	ItemTitle        string   // title text following the item marker, if any

	LegalPartName    string // الباب in effect when the chunk was created
	LegalChapterName string // الفصل in effect when the chunk was created

	Category       string // classification label, Arabic, empty if unclassified
	TargetAudience string // audience label, Arabic, empty if unclassified

	Keywords []string // representative phrases, relevance-descending

	Metadata map[string]string // extensible bag; always carries "resource_path"
}
