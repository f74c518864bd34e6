package chat_test

import (
	"context"

	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/pipeline/llm"
)

type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, query string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1, 0.2}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	return make([][]float32, len(chunks)), nil
}

type MockVectorDB struct {
	OnSearch           func(ctx context.Context, docId string, v []float32) ([]string, error)
	OnGetCachedAnswer  func(ctx context.Context, docId string, v []float32) (string, bool, error)
	OnSaveToCache      func(ctx context.Context, id string, docId string, v []float32, a string) error
	OnCreateCollection func(ctx context.Context, name string) error
	OnUpsertBatch      func(ctx context.Context, coll string, chunks []docModel.TextChunk, vectors [][]float32) error
	OnDeleteDocument   func(ctx context.Context, docId string) error
}

func (m *MockVectorDB) Search(ctx context.Context, docId string, v []float32) ([]string, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, docId, v)
	}
	return []string{"Content: relevant excerpt, DocumentName: doc"}, nil
}

func (m *MockVectorDB) GetCachedAnswer(ctx context.Context, docId string, v []float32) (string, bool, error) {
	if m.OnGetCachedAnswer != nil {
		return m.OnGetCachedAnswer(ctx, docId, v)
	}
	return "", false, nil
}

func (m *MockVectorDB) SaveToCache(ctx context.Context, id string, docId string, v []float32, a string) error {
	if m.OnSaveToCache != nil {
		return m.OnSaveToCache(ctx, id, docId, v, a)
	}
	return nil
}

func (m *MockVectorDB) CreateCollection(ctx context.Context, name string) error {
	if m.OnCreateCollection != nil {
		return m.OnCreateCollection(ctx, name)
	}
	return nil
}

func (m *MockVectorDB) UpsertBatch(ctx context.Context, coll string, chunks []docModel.TextChunk, vectors [][]float32) error {
	if m.OnUpsertBatch != nil {
		return m.OnUpsertBatch(ctx, coll, chunks, vectors)
	}
	return nil
}

func (m *MockVectorDB) DeleteDocument(ctx context.Context, docId string) error {
	if m.OnDeleteDocument != nil {
		return m.OnDeleteDocument(ctx, docId)
	}
	return nil
}

type MockLLM struct {
	OnGenerate func(ctx context.Context, prompt string, mediaURL string) (string, llm.Usage, error)
}

func (m *MockLLM) Generate(ctx context.Context, prompt string, mediaURL string) (string, llm.Usage, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt, mediaURL)
	}
	return "generated answer", llm.Usage{}, nil
}
