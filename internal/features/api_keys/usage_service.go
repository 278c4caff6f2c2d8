package api_keys

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const usageQueueCapacity = 1024

type usageTaskKind int

const (
	taskLogUsage usageTaskKind = iota
	taskTouchLastUsed
)

type usageTask struct {
	kind       usageTaskKind
	apiKeyID   uuid.UUID
	endpoint   string
	method     string
	statusCode int
	durationMs int64
}

// UsageLogService persists usage accounting off the request path. Tasks
// are queued to a bounded channel and handled by background workers; when
// the queue is full the task is dropped rather than blocking a request.
type UsageLogService struct {
	usageLogRepository ApiUsageLogRepository
	apiKeyRepository   ApiKeyRepository
	logger             *slog.Logger

	queue  chan usageTask
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewUsageLogService(
	usageLogRepository ApiUsageLogRepository,
	apiKeyRepository ApiKeyRepository,
	logger *slog.Logger,
) *UsageLogService {
	return &UsageLogService{
		usageLogRepository: usageLogRepository,
		apiKeyRepository:   apiKeyRepository,
		logger:             logger,
		queue:              make(chan usageTask, usageQueueCapacity),
	}
}

func (s *UsageLogService) StartWorkers(workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for i := 0; i < workerCount; i++ {
		s.wg.Add(1)
		go s.runWorker(ctx)
	}
}

func (s *UsageLogService) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *UsageLogService) EnqueueUsageLog(
	apiKeyID uuid.UUID,
	endpoint string,
	method string,
	statusCode int,
	durationMs int64,
) {
	s.enqueue(usageTask{
		kind:       taskLogUsage,
		apiKeyID:   apiKeyID,
		endpoint:   endpoint,
		method:     method,
		statusCode: statusCode,
		durationMs: durationMs,
	})
}

func (s *UsageLogService) EnqueueTouchLastUsed(apiKeyID uuid.UUID) {
	s.enqueue(usageTask{
		kind:     taskTouchLastUsed,
		apiKeyID: apiKeyID,
	})
}

func (s *UsageLogService) enqueue(task usageTask) {
	select {
	case s.queue <- task:
	default:
		s.logger.Warn("usage queue full, dropping task", "apiKeyId", task.apiKeyID)
	}
}

func (s *UsageLogService) runWorker(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task := <-s.queue:
			s.process(task)
		}
	}
}

func (s *UsageLogService) process(task usageTask) {
	switch task.kind {
	case taskLogUsage:
		entry := &ApiUsageLog{
			ID:         uuid.New(),
			ApiKeyID:   task.apiKeyID,
			Endpoint:   task.endpoint,
			Method:     task.method,
			StatusCode: task.statusCode,
			DurationMs: task.durationMs,
			CreatedAt:  time.Now().UTC(),
		}

		if err := s.usageLogRepository.Create(entry); err != nil {
			s.logger.Error("failed to write usage log", "apiKeyId", task.apiKeyID, "error", err)
		}
	case taskTouchLastUsed:
		apiKey, err := s.apiKeyRepository.GetByID(task.apiKeyID)
		if err != nil {
			s.logger.Error("failed to load API key for last-used update", "apiKeyId", task.apiKeyID, "error", err)
			return
		}

		apiKey.TouchLastUsed()

		if err := s.apiKeyRepository.Update(apiKey); err != nil {
			s.logger.Error("failed to update last-used timestamp", "apiKeyId", task.apiKeyID, "error", err)
		}
	}
}
