package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/queue"
	"journalflow.app/editorial/internal/worker"
)

var _ = Describe("Worker", func() {
	var (
		ctx      context.Context
		consumer *mockConsumer
		stores   *memStores
		txRunner *memTxRunner
		recorder *mockRecorder
		w        *worker.Worker
	)

	message := func(streamID string, eventID int64, attempt int) queue.Message {
		return queue.Message{
			ID:      streamID,
			Attempt: attempt,
			Event: model.WorkflowEvent{
				ID:           eventID,
				Type:         model.EventTypeQueryCreated,
				SubmissionID: 100,
				ActorID:      1,
				Stage:        model.StageReview,
				Recipients:   []int64{1, 2},
			},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &mockConsumer{}
		stores = &memStores{}
		txRunner = &memTxRunner{stores: stores}
		recorder = &mockRecorder{}
		w = worker.New(consumer, txRunner, worker.NewProcessor(), recorder, worker.Config{MaxAttempts: 3})
	})

	Describe("ProcessMessage", func() {
		It("commits and acks", func() {
			Expect(w.ProcessMessage(ctx, message("1-0", 1, 1))).To(Succeed())

			Expect(consumer.ackedIDs()).To(Equal([]string{"1-0"}))
			Expect(stores.activity).To(HaveLen(1))
			Expect(recorder.count("query_created/ok")).To(Equal(1))
		})

		It("leaves the message unacked when the transaction fails", func() {
			stores.notifyErr = errors.New("connection lost")

			err := w.ProcessMessage(ctx, message("1-0", 1, 1))

			Expect(err).To(HaveOccurred())
			Expect(consumer.ackedIDs()).To(BeEmpty())
			Expect(recorder.count("query_created/error")).To(Equal(1))
		})
	})

	Describe("Run", func() {
		runOnce := func(msgs ...queue.Message) {
			var delivered atomic.Bool
			consumer.readFn = func(context.Context) ([]queue.Message, error) {
				if delivered.CompareAndSwap(false, true) {
					return msgs, nil
				}
				time.Sleep(5 * time.Millisecond)
				return nil, nil
			}

			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()
			Eventually(delivered.Load).Should(BeTrue())
			w.Stop()
			Eventually(done).Should(Receive(BeNil()))
		}

		It("processes a batch", func() {
			runOnce(message("1-0", 1, 1), message("2-0", 2, 1))

			Expect(consumer.ackedIDs()).To(ConsistOf("1-0", "2-0"))
			Expect(stores.activity).To(HaveLen(2))
		})

		It("requeues failures below the attempt limit", func() {
			stores.notifyErr = errors.New("connection lost")

			runOnce(message("1-0", 1, 1))

			Expect(consumer.requeued).To(HaveLen(1))
			Expect(consumer.dlq).To(BeEmpty())
			Expect(consumer.reasons[0]).To(ContainSubstring("connection lost"))
		})

		It("dead-letters failures at the attempt limit", func() {
			stores.notifyErr = errors.New("connection lost")

			runOnce(message("1-0", 1, 3))

			Expect(consumer.requeued).To(BeEmpty())
			Expect(consumer.dlq).To(HaveLen(1))
		})

		It("survives a panicking processor", func() {
			w = worker.New(consumer, txRunner, panickingProcessor{}, nil, worker.Config{MaxAttempts: 3})

			runOnce(message("1-0", 1, 1))

			Expect(consumer.requeued).To(HaveLen(1))
			Expect(consumer.reasons[0]).To(ContainSubstring("panic: boom"))
		})
	})
})
