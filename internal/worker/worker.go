package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"journalflow.app/editorial/common/logger"
	"journalflow.app/editorial/internal/queue"
	"journalflow.app/editorial/internal/store"
)

// Mirrors service.StoreProvider - defined here to avoid import cycles.
type StoreProvider interface {
	Activity() store.ActivityStore
	Notifications() store.NotificationStore
}

// Mirrors service.TxRunner - defined here to avoid import cycles.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer  Consumer
	txRunner  TxRunner
	processor EventProcessor
	recorder  Recorder
	cfg       Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// New builds a Worker. recorder may be nil.
func New(consumer Consumer, txRunner TxRunner, processor EventProcessor, recorder Recorder, cfg Config) *Worker {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Worker{
		consumer:  consumer,
		txRunner:  txRunner,
		processor: processor,
		recorder:  recorder,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "editorial.worker",
	})
	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				select {
				case <-ctx.Done():
				case <-w.stopCh:
				case <-time.After(time.Second):
				}
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"event_id", msg.Event.ID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"event_id", msg.Event.ID)
			err = fmt.Errorf("panic: %v", r)
			w.record(string(msg.Event.Type), err)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage applies one event in a single transaction and acks it.
// Exported so it can be reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.Event.TraceID, "worker.process_event")
	defer sc.End()

	eventType := string(msg.Event.Type)
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{
		SubmissionID: &msg.Event.SubmissionID,
		QueryID:      msg.Event.QueryID,
		MessageID:    &msg.ID,
		EventType:    &eventType,
	})

	slog.InfoContext(ctx, "processing message",
		"event_id", msg.Event.ID,
		"attempt", msg.Attempt)

	if err := w.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		return w.processor.Process(ctx, msg.Event, sp)
	}); err != nil {
		sc.RecordError(err)
		w.record(eventType, err)
		// Not acked: the caller requeues or dead-letters it.
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// Redelivery is harmless: activity rows are keyed by event id.
		slog.WarnContext(ctx, "failed to ACK message",
			"error", err,
			"message_id", msg.ID)
	}

	w.record(eventType, nil)
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"event_id", msg.Event.ID,
			"attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"event_id", msg.Event.ID,
		"attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}

func (w *Worker) record(eventType string, err error) {
	if w.recorder == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	w.recorder.RecordWorkerEvent(eventType, outcome)
}
