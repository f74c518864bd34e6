package vectorDB

import (
	"context"

	"github.com/studykit/studykit/internal/domain/docModel"
)

// DataProcessor is everything the chat service needs from a vector store:
// similarity search scoped to one document, an answer cache keyed by
// question embedding, and batch ingestion of document chunks.
type DataProcessor interface {
	Search(ctx context.Context, docId string, vectorVal []float32) ([]string, error)
	GetCachedAnswer(ctx context.Context, docId string, queryVector []float32) (string, bool, error)
	SaveToCache(ctx context.Context, id string, docId string, vector []float32, answer string) error

	CreateCollection(ctx context.Context, collectionName string) error
	UpsertBatch(ctx context.Context, collectionName string, chunks []docModel.TextChunk, vectors [][]float32) error
	DeleteDocument(ctx context.Context, docId string) error
}
