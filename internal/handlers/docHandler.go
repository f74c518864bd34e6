package handlers

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/studykit/studykit/internal/chat"
	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/data/blob"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/job"
	"github.com/studykit/studykit/internal/metrics"
	"github.com/studykit/studykit/internal/pipeline"
	"github.com/studykit/studykit/pkg/logger_i"
)

var (
	handlerInstance *DocHandler //private singleton
	once            sync.Once
	logDH           *logger_i.Logger
	logRH           *logger_i.Logger
)

type DocHandler struct {
	service  *job.Service
	pipeline pipeline.Service
	chat     chat.Service //nil when the vector stack is offline
	blobs    blob.Store
}

type HandlerConfig struct {
	JobService      *job.Service
	PipelineService pipeline.Service
	ChatService     chat.Service
	BlobStore       blob.Store
}

func InitDocHandler(cfg HandlerConfig) {
	once.Do(func() {
		handlerInstance = &DocHandler{
			service:  cfg.JobService,
			pipeline: cfg.PipelineService,
			chat:     cfg.ChatService,
			blobs:    cfg.BlobStore,
		}

		logDH = logger_i.NewLogger("DocHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logDH.Info("Starting document handler")
	})
}

func EnqueuePipelineJob(pipelineJob docModel.PipelineJob) {
	logDH.With("traceId", pipelineJob.TraceId, "docId", pipelineJob.DocId)
	logDH.Info("Enqueueing pipeline job")
	handlerInstance.pushToJobChannel(pipelineJob)
}

func GetDocument(id string, traceId string) (docModel.Document, docModel.Artifacts, bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance == nil {
		return docModel.Document{}, docModel.Artifacts{}, false
	}
	doc, found := handlerInstance.service.DocStore.GetDocument(ctxC, id)
	if !found {
		return docModel.Document{}, docModel.Artifacts{}, false
	}
	artifacts, err := handlerInstance.service.ArtifactStore.GetArtifacts(ctxC, id)
	if err != nil {
		logDH.Error("Failed to load artifacts", "docId", id, "error", err)
	}
	return doc, artifacts, true
}

// private methods
func (h *DocHandler) pushToJobChannel(pipelineJob docModel.PipelineJob) {
	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- pipelineJob //blocking send to prevent the system from being overwhelmed
	logDH.Info("Enqueued pipeline job")

	// Every pipeline job fans out four inference calls, so each enqueue
	// also signals the dispatcher. Idle workers retire on their own.
	atomic.AddInt64(&h.service.RequestCount, 1)
	metrics.StartDispatcherSignalCount() //metrics
	h.service.DispatcherChannel <- true
}
