package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
	"journalflow.app/editorial/internal/store"
)

var _ = Describe("NotificationService", func() {
	var (
		ctx    context.Context
		ns     *mockNotificationStore
		svc    service.NotificationService
		caller model.Caller
	)

	BeforeEach(func() {
		ctx = context.Background()
		ns = &mockNotificationStore{}
		svc = service.NewNotificationService(ns)
		caller = model.Caller{UserID: reviewerID}
	})

	It("lists the caller's notifications with a clamped limit", func() {
		var gotUser int64
		var gotLimit int32
		ns.listByUserFn = func(_ context.Context, userID int64, unreadOnly bool, limit int32) ([]model.Notification, error) {
			gotUser, gotLimit = userID, limit
			Expect(unreadOnly).To(BeTrue())
			return []model.Notification{{ID: 1, UserID: userID}}, nil
		}

		list, err := svc.List(ctx, caller, true, 10_000)

		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(gotUser).To(Equal(reviewerID))
		Expect(gotLimit).To(Equal(int32(service.MaxNotificationLimit)))
	})

	It("marks a notification read", func() {
		now := time.Now()
		ns.markReadFn = func(_ context.Context, id, userID int64) (*model.Notification, error) {
			return &model.Notification{ID: id, UserID: userID, ReadAt: &now}, nil
		}

		n, err := svc.MarkRead(ctx, caller, 5)

		Expect(err).NotTo(HaveOccurred())
		Expect(n.Read()).To(BeTrue())
	})

	It("hides notifications addressed to someone else", func() {
		ns.markReadFn = func(context.Context, int64, int64) (*model.Notification, error) {
			return nil, store.ErrNotFound
		}

		_, err := svc.MarkRead(ctx, caller, 5)
		Expect(err).To(MatchError(service.ErrNotificationNotFound))
	})
})
