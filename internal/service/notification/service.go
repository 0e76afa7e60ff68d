package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/notification"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/sse"
)

// Config holds dispatcher tuning.
type Config struct {
	WorkerCount int // default: 2
	QueueSize   int // default: 1000
}

type Dispatcher struct {
	repo   notification.Repository
	hub    *sse.Hub
	config Config

	queue  chan notification.Event
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewDispatcher starts background workers that persist punch events and push
// them to live subscribers. Dispatch never blocks the punch pipeline and
// never reports failure back to it.
func NewDispatcher(repo notification.Repository, hub *sse.Hub, cfg Config) *Dispatcher {
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &Dispatcher{
		repo:   repo,
		hub:    hub,
		config: cfg,
		queue:  make(chan notification.Event, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("notification dispatcher started",
		"workers", cfg.WorkerCount, "queue_size", cfg.QueueSize)

	return s
}

// Dispatch implements notification.Dispatcher. When the queue is full the
// event is dropped with a log line; attendance must not wait on delivery.
func (s *Dispatcher) Dispatch(ctx context.Context, event notification.Event) {
	select {
	case s.queue <- event:
	default:
		slog.Warn("notification queue full, dropping event",
			"type", event.Type, "employee_id", event.EmployeeID)
	}
}

func (s *Dispatcher) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case event := <-s.queue:
			s.deliver(id, event)
		case <-s.stopCh:
			// Drain what is already queued before exiting.
			for {
				select {
				case event := <-s.queue:
					s.deliver(id, event)
				default:
					return
				}
			}
		}
	}
}

func (s *Dispatcher) deliver(workerID int, event notification.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.repo.Create(ctx, &event); err != nil {
		slog.Error("failed to persist notification",
			"worker", workerID, "type", event.Type, "error", err)
	}

	if s.hub != nil {
		s.hub.PublishToRoles(event.TargetRoles, sse.Event{
			Event: "notification",
			Data:  event,
		})
	}
}

// Stop flushes queued events and stops the workers.
func (s *Dispatcher) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}
