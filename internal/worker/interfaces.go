package worker

import (
	"context"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// EventProcessor turns one workflow event into persisted side effects
// using the stores of the surrounding transaction.
type EventProcessor interface {
	Process(ctx context.Context, ev model.WorkflowEvent, stores StoreProvider) error
}

// Recorder counts handled events by outcome.
type Recorder interface {
	RecordWorkerEvent(eventType, outcome string)
}
