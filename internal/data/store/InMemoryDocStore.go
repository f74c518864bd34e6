package store

import (
	"context"
	"sync"

	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem DocStore")

type InMemoryDocStore struct {
	docMutex *sync.RWMutex
	docMap   map[string]docModel.Document
}

func InitInMemoryDocStore() *InMemoryDocStore {
	return &InMemoryDocStore{
		docMutex: new(sync.RWMutex),
		docMap:   make(map[string]docModel.Document),
	}
}

func (store *InMemoryDocStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	store.docMap[doc.Id] = doc
	inMemLogger.Debug("Saved document to store", "docId", doc.Id)
	return nil
}

func (store *InMemoryDocStore) GetDocument(ctx context.Context, docId string) (docModel.Document, bool) {
	store.docMutex.RLock()
	defer store.docMutex.RUnlock()
	result, found := store.docMap[docId]
	return result, found
}

func (store *InMemoryDocStore) DeleteDocument(ctx context.Context, docId string) {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	delete(store.docMap, docId)
}
