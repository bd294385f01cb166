package worker_test

import (
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/worker"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("Processor", func() {
	var (
		ctx       context.Context
		stores    *memStores
		txRunner  *memTxRunner
		processor *worker.Processor
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = &memStores{}
		txRunner = &memTxRunner{stores: stores}
		processor = worker.NewProcessor()
	})

	process := func(ev model.WorkflowEvent) error {
		return txRunner.WithTx(ctx, func(sp worker.StoreProvider) error {
			return processor.Process(ctx, ev, sp)
		})
	}

	queryEvent := model.WorkflowEvent{
		ID:           9001,
		Type:         model.EventTypeQueryNoteAdded,
		SubmissionID: 100,
		ActorID:      1,
		ActorName:    "Edith",
		Stage:        model.StageReview,
		QueryID:      ptr(int64(55)),
		NoteID:       ptr(int64(66)),
		Recipients:   []int64{1, 2, 3, 3},
		TraceID:      "4bf92f3577b34da6a3ce929d0e0e4736",
	}

	It("records one activity row keyed by the event id", func() {
		Expect(process(queryEvent)).To(Succeed())

		Expect(stores.activity).To(HaveLen(1))
		entry := stores.activity[0]
		Expect(entry.ID).To(Equal(queryEvent.ID))
		Expect(entry.Category).To(Equal(model.ActivityCategoryQueries))
		Expect(entry.EventType).To(Equal(model.EventTypeQueryNoteAdded))
		Expect(entry.Message).To(Equal("Edith replied to a query at review"))

		var meta map[string]any
		Expect(json.Unmarshal(entry.Metadata, &meta)).To(Succeed())
		Expect(meta).To(HaveKeyWithValue("query_id", "55"))
		Expect(meta).To(HaveKeyWithValue("trace_id", queryEvent.TraceID))
	})

	It("notifies every participant except the actor once", func() {
		Expect(process(queryEvent)).To(Succeed())

		Expect(stores.notifications).To(HaveLen(2))
		var users []int64
		for _, n := range stores.notifications {
			users = append(users, n.UserID)
			Expect(n.Kind).To(Equal(model.NotificationKindQueryReplied))
			Expect(*n.QueryID).To(Equal(int64(55)))
			Expect(n.EventID).To(Equal(queryEvent.ID))
		}
		Expect(users).To(ConsistOf(int64(2), int64(3)))
	})

	It("is idempotent on redelivery", func() {
		Expect(process(queryEvent)).To(Succeed())
		Expect(process(queryEvent)).To(Succeed())

		Expect(stores.activity).To(HaveLen(1))
		Expect(stores.notifications).To(HaveLen(2))
	})

	It("notifies the affected user of participant changes made by someone else", func() {
		ev := model.WorkflowEvent{
			ID:           9002,
			Type:         model.EventTypeParticipantAssigned,
			SubmissionID: 100,
			ActorID:      1,
			ActorName:    "Edith",
			Stage:        model.StageReview,
			Role:         model.RoleReviewer,
			UserID:       ptr(int64(2)),
			UserName:     "Ravi",
			Recipients:   []int64{2},
		}

		Expect(process(ev)).To(Succeed())

		Expect(stores.activity[0].Category).To(Equal(model.ActivityCategoryParticipants))
		Expect(stores.activity[0].Message).To(Equal("Edith assigned Ravi as reviewer at review"))
		Expect(stores.notifications).To(HaveLen(1))
		Expect(stores.notifications[0].Kind).To(Equal(model.NotificationKindAssigned))
	})

	It("does not notify users about their own changes", func() {
		ev := model.WorkflowEvent{
			ID:           9003,
			Type:         model.EventTypeParticipantRemoved,
			SubmissionID: 100,
			ActorID:      2,
			Stage:        model.StageReview,
			Role:         model.RoleReviewer,
			UserID:       ptr(int64(2)),
			Recipients:   []int64{2},
		}

		Expect(process(ev)).To(Succeed())

		Expect(stores.activity[0].Message).To(Equal("user 2 removed user 2 as reviewer at review"))
		Expect(stores.notifications).To(BeEmpty())
	})

	It("rolls back the activity row when a notification fails", func() {
		stores.notifyErr = errors.New("deadlock detected")

		err := process(queryEvent)

		Expect(err).To(MatchError(ContainSubstring("deadlock detected")))
		Expect(stores.activity).To(BeEmpty())
	})
})
