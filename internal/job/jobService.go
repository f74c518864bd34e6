package job

import (
	"github.com/studykit/studykit/internal/domain/docModel"
)

type Service struct {
	JobChannel        chan docModel.PipelineJob
	RequestCount      int64
	DispatcherChannel chan bool
	DocStore          docModel.DocumentStore
	ArtifactStore     docModel.ArtifactStore
}

type ServiceConfig struct {
	JobChannel        chan docModel.PipelineJob
	RequestCount      int64
	DispatcherChannel chan bool
	DocStore          docModel.DocumentStore
	ArtifactStore     docModel.ArtifactStore
}

func InitJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel:        cfg.JobChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
		DocStore:          cfg.DocStore,
		ArtifactStore:     cfg.ArtifactStore,
	}
}
