// @title           StudyKit API
// @version         1.0
// @description     Turns uploaded course material into summaries, notes, flashcards and quizzes, with document Q&A chat.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/studykit/studykit/internal/chat"
	"github.com/studykit/studykit/internal/chat/embedding"
	"github.com/studykit/studykit/internal/chat/embedding/googleEmbedding"
	"github.com/studykit/studykit/internal/chat/vectorDB/qdrantDB"
	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/data/blob"
	"github.com/studykit/studykit/internal/data/store"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/handlers"
	"github.com/studykit/studykit/internal/job"
	"github.com/studykit/studykit/internal/pipeline"
	"github.com/studykit/studykit/internal/pipeline/llm"
	"github.com/studykit/studykit/internal/pipeline/llm/gemini"
	"github.com/studykit/studykit/internal/pipeline/llm/openaillm"
	"github.com/studykit/studykit/internal/server"
	"github.com/studykit/studykit/internal/worker"
	"github.com/studykit/studykit/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered pipeline job channel
	jobChannel := make(chan docModel.PipelineJob, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	if docStore := store.GetRedisDocStore(serviceContext); docStore != nil {
		serviceConfig.DocStore = docStore
	}
	if artifactStore := store.GetRedisArtifactStore(serviceContext); artifactStore != nil {
		serviceConfig.ArtifactStore = artifactStore
	}
	if serviceConfig.DocStore == nil || serviceConfig.ArtifactStore == nil {
		logger.Error("Redis stores are offline, falling back to in-memory")
		serviceConfig.DocStore = store.InitInMemoryDocStore()
		serviceConfig.ArtifactStore = store.InitInMemoryArtifactStore()
	}
	service := job.InitJobService(serviceConfig)

	blobStore, err := blob.NewFileStore()
	if err != nil {
		logger.Error("Blob store failed to initialize. Shutting down.", "error", err)
		return
	}

	llmProvider := selectProvider(serviceContext, logger)
	if llmProvider == nil {
		logger.Error("No inference provider available. Shutting down.")
		return
	}

	//chat stack is best-effort: the core pipeline runs without it
	var chatService chat.Service
	vectorDB := qdrantDB.GetQdrantClient(serviceContext)
	embeddingService := googleEmbeddingClient(serviceContext)
	if vectorDB != nil && embeddingService != nil {
		chatService = chat.NewService(vectorDB, llmProvider, embeddingService)
	} else {
		logger.Warn("Chat stack offline", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil)
	}

	var indexer pipeline.Indexer
	if chatService != nil {
		indexer = chatService
	}
	pipelineService := pipeline.NewService(llmProvider, serviceConfig.DocStore, serviceConfig.ArtifactStore, indexer)

	handlers.InitDocHandler(handlers.HandlerConfig{
		JobService:      service,
		PipelineService: pipelineService,
		ChatService:     chatService,
		BlobStore:       blobStore,
	})

	//init worker pool
	worker.InitServices(service, pipelineService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func selectProvider(ctx context.Context, logger *logger_i.Logger) llm.Provider {
	switch os.Getenv(config.LLMProviderEnv) {
	case config.ProviderOpenAI:
		logger.Info("Using OpenAI provider")
		return openaillm.GetOpenAIClient(os.Getenv(config.OpenAIAPIKeyEnv))
	default:
		logger.Info("Using Gemini provider")
		return gemini.GetGeminiClient(ctx, os.Getenv(config.GeminiAPIKeyEnv))
	}
}

func googleEmbeddingClient(ctx context.Context) embedding.Embedder {
	apikey := os.Getenv(config.GeminiAPIKeyEnv)
	if apikey == "" {
		return nil
	}
	return googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, apikey)
}
