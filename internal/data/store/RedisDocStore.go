package store

import (
	"context"
	"encoding/json"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/data/redisStore"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/pkg/logger_i"
)

type RedisDocStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDocStore(ctx context.Context) *RedisDocStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if inner == nil {
		return nil
	}
	return &RedisDocStore{
		store:  inner,
		logger: logger_i.NewLogger("DocStore"),
	}
}

func (s *RedisDocStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "doc Id", doc.Id)
	log.Debug("saving document")
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, doc.Id, data, config.RedisDocumentStoreTTL)
	if err == nil {
		log.Debug("Saved document to Redis")
	}
	return err
}

func (s *RedisDocStore) GetDocument(ctx context.Context, docId string) (docModel.Document, bool) {
	var doc docModel.Document
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "doc Id", docId)
	log.Debug("getting document")
	val, err := s.store.Get(ctx, docId)
	if s.store.IsNil(err) {
		return doc, false
	} else if err != nil {
		return doc, false
	}

	err = json.Unmarshal([]byte(val), &doc)
	if err != nil {
		return doc, false
	}

	log.Debug("Document found in Redis")
	return doc, true
}

func (s *RedisDocStore) DeleteDocument(ctx context.Context, docId string) {
	err := s.store.Del(ctx, docId)
	if err != nil {
		s.logger.Error("Error deleting document from Redis", "docId", docId)
		return
	}
	s.logger.Debug("Document deleted from Redis", "docId", docId)
}

func TestDocStore(store *redisStore.Store) *RedisDocStore {
	return &RedisDocStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
