package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"journalflow.app/editorial/internal/model"
)

type Producer interface {
	Publish(ctx context.Context, ev model.WorkflowEvent) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, ev model.WorkflowEvent) error {
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: eventValues(ev, 1),
	}).Err(); err != nil {
		return fmt.Errorf("publish workflow event: %w", err)
	}

	p.logger.InfoContext(ctx, "published workflow event",
		"event_id", ev.ID,
		"event_type", ev.Type,
		"submission_id", ev.SubmissionID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
