package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//auth - AUTH_TOKEN env overrides AuthToken, NoAuthBypass is for local runs only
	NoAuthBypass = true
	AuthToken    = ""

	//uploads
	MaxUploadSize      = 10 << 20 //10mb per document
	UploadDirName      = "document_blobs"
	MaxExtractedChars  = 10000
	TruncationMarker   = "\n...[content truncated]"
	PageExtractTimeout = 10 * time.Second

	//generation
	GeneratorTimeout              = 90 * time.Second
	DefaultFlashcardCount         = 10
	DefaultQuizCount              = 10
	ModelProbePrompt              = "Reply with the single word: ok"
	ModelTemperature      float32 = 0.7
	SystemInstruction             = "You are a study assistant. You turn course material into clear, accurate study aids. Never invent facts that are not in the provided material."

	//llm providers
	ProviderGemini  = "gemini"
	ProviderOpenAI  = "openai"
	GeminiAPIKeyEnv = "GEMINI_API_KEY"
	OpenAIAPIKeyEnv = "OPENAI_API_KEY"
	LLMProviderEnv  = "LLM_PROVIDER"

	//chat embedding + vector store
	EmbeddingOutputDimensionality int32 = 1536
	ChunkCollectionName                 = "studykit-chunks"
	CacheSimilarityCutoff               = 0.97
	GoogleEmbeddingModel                = "gemini-embedding-001"

	//worker pool
	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	JobExecutionTimeout             = 5 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	// quiz regeneration is synchronous and can run a full generator timeout
	WriteTimeout           = 2 * time.Minute
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//pipeline job buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantHost     = "localhost"
	QdrantPort     = 6333 //http
	QdrantGrpcPort = 6334
	QdrantUseTLS   = false //set for https
	QdrantPoolSize = 1

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisDocumentStore = 0
	RedisArtifactStore = 1

	//redis TTLs - documents and their artifacts live until deleted
	RedisDocumentStoreTTL time.Duration = 0
	RedisArtifactStoreTTL time.Duration = 0
)

// GeminiModelCandidates is the fixed preference order for model resolution.
// Availability of the newer models varies by region, so the resolver probes
// each with a trivial call and memoizes the first that answers.
var GeminiModelCandidates = []string{
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash",
}

var OpenAIModelCandidates = []string{
	"gpt-4o-mini",
	"gpt-4o",
	"gpt-3.5-turbo",
}
