package docModel

// TextChunk is one embeddable slice of a document's extracted text,
// used by the Q&A chat index.
type TextChunk struct {
	DocId      string `json:"source_doc_id"`
	DocName    string `json:"doc_name"`
	ChunkId    string `json:"chunk_id"`
	Content    string `json:"content"`
	ChunkOrder int    `json:"chunk_order"`
}
