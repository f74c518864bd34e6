package qdrantDB

import (
	"context"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"github.com/studykit/studykit/internal/config"
)

var cacheCollectionName string = "studykit-chat-cache"

func initCacheCollection(ctx context.Context, client *qdrant.Client) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	err := createCollection(ctx, client, cacheCollectionName)
	if err != nil {
		loggr.Error("Semantic cache collection creation failed", "error", err)
	}
}

// GetCachedAnswer looks for a previously answered question close enough in
// embedding space. Cache entries are scoped per document so the same
// question about two different uploads never cross-pollinates.
func (db *ClientHolder) GetCachedAnswer(ctx context.Context, docId string, queryVector []float32) (string, bool, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "docId", docId)

	searchResult, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: cacheCollectionName,
		Query:          qdrant.NewQuery(queryVector...),
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("source_doc_id", docId),
			},
		},
	})
	if err != nil || len(searchResult) == 0 {
		return "", false, err
	}

	loggr.Debug("Cache candidate", "similarity score", searchResult[0].Score)
	if searchResult[0].Score < config.CacheSimilarityCutoff {
		return "", false, nil
	}

	loggr.Info("Semantic cache hit")
	answer := searchResult[0].Payload["answer"].GetStringValue()
	return answer, true, nil
}

func (db *ClientHolder) SaveToCache(ctx context.Context, id string, docId string, vector []float32, answer string) error {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	loggr.Debug("Saving answer to cache")
	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: cacheCollectionName,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(id),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(map[string]any{
					"answer":        answer,
					"source_doc_id": docId,
					"timestamp":     time.Now().Unix(),
				}),
			},
		},
	})
	if err != nil {
		loggr.Error("Saving answer to cache failed", "error", err)
	}
	return err
}
