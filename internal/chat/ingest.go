package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/studykit/studykit/internal/adapter/utils"
	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/domain/docModel"
)

// Limits for the splitter
const maxChunkSize = 1000 // characters
const chunkOverlap = 150  // generous overlap helps semantic continuity

const indexBatchSize = 100

func splitTextIntoChunks(text string, limit int, overlap int) []string {
	var chunks []string

	if len(text) <= limit {
		return []string{text}
	}

	// Separators ordered from "best" to "worst" for semantic meaning
	separators := []string{"\n\n", "\n", ". ", " ", ""}

	var splitChar string
	found := false
	for _, s := range separators {
		if strings.Contains(text, s) {
			splitChar = s
			found = true
			break
		}
	}

	if !found {
		// Hard cut if no separator found (rare)
		return []string{text[:limit]}
	}

	parts := strings.Split(text, splitChar)
	var currentChunk strings.Builder

	for _, part := range parts {
		if currentChunk.Len()+len(part)+len(splitChar) > limit {
			if currentChunk.Len() > 0 {
				chunks = append(chunks, currentChunk.String())
			}

			// Start the next chunk with the tail of the previous one
			overlapContent := ""
			if currentChunk.Len() > overlap {
				overlapContent = currentChunk.String()[currentChunk.Len()-overlap:]
			}

			currentChunk.Reset()
			currentChunk.WriteString(overlapContent)
		}

		if currentChunk.Len() > 0 && splitChar != "" {
			currentChunk.WriteString(splitChar)
		}
		currentChunk.WriteString(part)
	}

	if currentChunk.Len() > 0 {
		chunks = append(chunks, currentChunk.String())
	}

	return chunks
}

func prepareChunks(docId string, docName string, text string) []docModel.TextChunk {
	stringChunks := splitTextIntoChunks(text, maxChunkSize, chunkOverlap)

	allChunks := make([]docModel.TextChunk, 0, len(stringChunks))
	for i, content := range stringChunks {
		if strings.TrimSpace(content) == "" {
			continue
		}
		allChunks = append(allChunks, docModel.TextChunk{
			DocId:      docId,
			DocName:    docName,
			ChunkId:    utils.GetNewUUID(),
			Content:    content,
			ChunkOrder: i,
		})
	}
	return allChunks
}

func (s *service) batchIndex(ctx context.Context, chunks []docModel.TextChunk) error {
	for i := 0; i < len(chunks); i += indexBatchSize {
		end := i + indexBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		currentBatch := chunks[i:end]

		texts := make([]string, 0, len(currentBatch))
		for _, c := range currentBatch {
			texts = append(texts, c.Content)
		}

		vectors, err := s.embedder.BatchEmbedding(ctx, texts)
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}

		if err := s.vectorDB.UpsertBatch(ctx, config.ChunkCollectionName, currentBatch, vectors); err != nil {
			return fmt.Errorf("vector upsert failed: %w", err)
		}
	}

	return nil
}
