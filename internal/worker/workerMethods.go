package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/metrics"
)

// executeJob runs the generation pipeline for one document and writes the
// terminal status exactly once. The worker is the only writer of document
// status after the upload handler creates the record, so there is no
// status race to guard against.
func executeJob(pipelineJob docModel.PipelineJob) {
	start := time.Now()
	var finalStatus docModel.DocStatus
	defer func() {
		metrics.CaptureJobMetrics(string(finalStatus), time.Since(start))
	}()

	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, pipelineJob.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.JobExecutionTimeout)
	defer cancel()

	log := logger.With("traceId", pipelineJob.TraceId, "docId", pipelineJob.DocId)
	log.Debug("Processing pipeline job")

	doc, found := _jobService.DocStore.GetDocument(ctx, pipelineJob.DocId)
	if !found {
		log.Error("Document vanished before processing")
		finalStatus = docModel.StatusFailed
		return
	}
	if doc.Status.IsTerminal() {
		// Duplicate delivery, nothing to do.
		log.Info("Document already settled", "status", doc.Status)
		finalStatus = doc.Status
		return
	}

	finalStatus = _pipelineService.ProcessDocument(ctx, pipelineJob)

	doc.Status = finalStatus
	doc.UpdatedAt = time.Now()
	if finalStatus == docModel.StatusFailed {
		doc.Error = &docModel.DocError{Message: "generation failed for all study aids"}
	}
	if err := _jobService.DocStore.SaveDocument(ctx, doc); err != nil {
		log.Error("Failed to persist final document status", "error", err)
	}

	log.Info("Pipeline job settled", "status", finalStatus)
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()
}
