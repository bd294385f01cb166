package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

var _ = Describe("WorkflowService", func() {
	var (
		ctx       context.Context
		db        *memDB
		publisher *mockPublisher
		recorder  *mockRecorder
		svc       service.WorkflowService

		editor   model.Caller
		reviewer model.Caller
		author   model.Caller
		admin    model.Caller
		stranger model.Caller
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		db.addSubmission(submissionID, journalID)
		db.addMember(journalID, editorID, "Edith", model.JournalRoleEditor)
		db.addMember(journalID, reviewerID, "Ravi", model.JournalRoleReviewer)
		db.addMember(journalID, authorID, "Ana", model.JournalRoleAuthor)

		publisher = &mockPublisher{}
		recorder = &mockRecorder{}

		directory := service.NewDirectoryService(db.JournalRoles(), nil, 0)
		participants := service.NewParticipantService(db.Submissions(), db.Participants(), directory)
		queries := service.NewQueryService(memTxRunner{db}, db.Queries(), db.Submissions(), directory)
		svc = service.NewWorkflowService(db.Submissions(), db.Activity(), participants, queries, publisher, recorder)

		roles := func(userID int64, role model.JournalRole) []model.JournalRoleAssignment {
			return []model.JournalRoleAssignment{{JournalID: journalID, UserID: userID, Role: role}}
		}
		editor = model.Caller{UserID: editorID, Name: "Edith", Roles: roles(editorID, model.JournalRoleEditor)}
		reviewer = model.Caller{UserID: reviewerID, Name: "Ravi", Roles: roles(reviewerID, model.JournalRoleReviewer)}
		author = model.Caller{UserID: authorID, Name: "Ana", Roles: roles(authorID, model.JournalRoleAuthor)}
		admin = model.Caller{UserID: 500, Name: "Root", SiteAdmin: true}
		stranger = model.Caller{UserID: 600, Name: "Sam", Roles: []model.JournalRoleAssignment{
			{JournalID: 77, UserID: 600, Role: model.JournalRoleManager},
		}}
	})

	replyTo := func(queryID int64, message string) service.ReplyInput {
		return service.ReplyInput{SubmissionID: submissionID, QueryID: queryID, Message: message}
	}

	Describe("request validation", func() {
		var lookups int

		BeforeEach(func() {
			lookups = 0
			failing := &mockSubmissionStore{
				getByIDFn: func(context.Context, int64) (*model.Submission, error) {
					lookups++
					return nil, errors.New("connection refused")
				},
			}
			directory := service.NewDirectoryService(db.JournalRoles(), nil, 0)
			participants := service.NewParticipantService(failing, db.Participants(), directory)
			queries := service.NewQueryService(memTxRunner{db}, db.Queries(), failing, directory)
			svc = service.NewWorkflowService(failing, db.Activity(), participants, queries, publisher, recorder)
		})

		DescribeTable("rejects blank messages before touching storage",
			func(message string) {
				_, err := svc.CreateQuery(ctx, editor, service.NewQueryInput{
					SubmissionID: submissionID, Stage: model.StageReview, Message: message,
				})
				Expect(err).To(MatchError(service.ErrEmptyMessage))
				Expect(service.ErrorKind(err)).To(Equal(service.KindValidation))

				_, err = svc.ReplyToQuery(ctx, stranger, replyTo(900, message))
				Expect(err).To(MatchError(service.ErrEmptyMessage))
				Expect(service.ErrorKind(err)).To(Equal(service.KindValidation))

				Expect(lookups).To(BeZero())
				Expect(publisher.types()).To(BeEmpty())
			},
			Entry("empty", ""),
			Entry("spaces", "   "),
			Entry("mixed whitespace", "\t\n "),
		)

		It("rejects an unknown query stage before touching storage", func() {
			_, err := svc.CreateQuery(ctx, editor, service.NewQueryInput{
				SubmissionID: submissionID, Stage: model.Stage("archive"), Message: "hi",
			})
			Expect(service.ErrorKind(err)).To(Equal(service.KindValidation))

			stage := model.Stage("archive")
			_, err = svc.ListQueries(ctx, editor, submissionID, &stage)
			Expect(service.ErrorKind(err)).To(Equal(service.KindValidation))
			Expect(lookups).To(BeZero())
		})

		It("rejects incomplete participant requests before touching storage", func() {
			_, err := svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID,
			})
			Expect(service.ErrorKind(err)).To(Equal(service.KindValidation))

			_, err = svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleCopyeditor,
			})
			Expect(service.ErrorKind(err)).To(Equal(service.KindInvalidRoleForStage))

			_, err = svc.UpdateParticipantPermissions(ctx, editor, service.UpdatePermissionsParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID,
			})
			Expect(service.ErrorKind(err)).To(Equal(service.KindValidation))

			err = svc.RemoveParticipant(ctx, editor, submissionID, model.StageReview, 0, model.RoleReviewer)
			Expect(service.ErrorKind(err)).To(Equal(service.KindValidation))

			Expect(lookups).To(BeZero())
		})

		It("reaches storage once the request is well formed", func() {
			_, err := svc.CreateQuery(ctx, editor, service.NewQueryInput{
				SubmissionID: submissionID, Stage: model.StageReview, Message: "hi",
			})
			Expect(service.ErrorKind(err)).To(Equal(service.KindStorageFailure))
			Expect(lookups).To(Equal(1))
		})
	})

	Describe("editorial scenario", func() {
		It("runs assignment and a query thread end to end", func() {
			By("assigning U as editor at review")
			p, err := svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleEditor,
			})
			Expect(err).NotTo(HaveOccurred())
			list, err := svc.ListParticipants(ctx, editor, submissionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].ID).To(Equal(p.ID))
			Expect(list[0].Stage).To(Equal(model.StageReview))
			Expect(list[0].UserID).To(Equal(reviewerID))
			Expect(list[0].Role).To(Equal(model.RoleEditor))

			By("re-assigning the same tuple")
			_, err = svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleEditor,
			})
			Expect(err).To(MatchError(service.ErrDuplicateAssignment))

			By("assigning U as copyeditor at review")
			_, err = svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleCopyeditor,
			})
			Expect(err).To(MatchError(service.ErrInvalidRoleForStage))

			By("opening a query with U")
			q, err := svc.CreateQuery(ctx, editor, service.NewQueryInput{
				SubmissionID:   submissionID,
				Stage:          model.StageReview,
				Message:        "Please clarify methodology",
				ParticipantIDs: []int64{reviewerID},
			})
			Expect(err).NotTo(HaveOccurred())
			stage := model.StageReview
			qs, err := svc.ListQueries(ctx, editor, submissionID, &stage)
			Expect(err).NotTo(HaveOccurred())
			open, closed := model.PartitionQueries(qs)
			Expect(open).To(HaveLen(1))
			Expect(closed).To(BeEmpty())
			Expect(open[0].Notes).To(HaveLen(1))

			By("replying as U")
			_, err = svc.ReplyToQuery(ctx, reviewer, replyTo(q.ID, "Clarified, see revised section 3"))
			Expect(err).NotTo(HaveOccurred())
			qs, _ = svc.ListQueries(ctx, editor, submissionID, &stage)
			Expect(qs[0].Notes).To(HaveLen(2))
			Expect(qs[0].DateModified.After(q.DateModified)).To(BeTrue())

			By("closing the query")
			closedQuery, changed, err := svc.CloseQuery(ctx, editor, submissionID, q.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())
			Expect(closedQuery.Closed).To(BeTrue())
			_, err = svc.ReplyToQuery(ctx, reviewer, replyTo(q.ID, "one more thing"))
			Expect(err).To(MatchError(service.ErrQueryClosed))

			Expect(publisher.types()).To(Equal([]model.EventType{
				model.EventTypeParticipantAssigned,
				model.EventTypeQueryCreated,
				model.EventTypeQueryNoteAdded,
				model.EventTypeQueryClosed,
			}))
		})
	})

	Describe("authorization", func() {
		It("lets site admins manage any journal", func() {
			_, err := svc.AssignParticipant(ctx, admin, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleReviewer,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("forbids non-editorial journal members from managing", func() {
			_, err := svc.AssignParticipant(ctx, author, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleReviewer,
			})
			Expect(err).To(MatchError(service.ErrForbidden))

			_, err = svc.CreateQuery(ctx, reviewer, service.NewQueryInput{
				SubmissionID: submissionID, Stage: model.StageReview, Message: "hi",
			})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("lets journal members list but not outsiders", func() {
			_, err := svc.ListParticipants(ctx, author, submissionID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ListQueries(ctx, stranger, submissionID, nil)
			Expect(err).To(MatchError(service.ErrForbidden))
			Expect(service.ErrorKind(err)).To(Equal(service.KindForbidden))
		})

		It("reports a missing submission before checking permissions", func() {
			_, err := svc.ListParticipants(ctx, stranger, 4242)
			Expect(err).To(MatchError(service.ErrSubmissionNotFound))
		})

		It("lets query participants reply and nobody else without editorial rights", func() {
			q, err := svc.CreateQuery(ctx, editor, service.NewQueryInput{
				SubmissionID: submissionID, Stage: model.StageReview, Message: "hi", ParticipantIDs: []int64{reviewerID},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ReplyToQuery(ctx, reviewer, replyTo(q.ID, "answer"))
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ReplyToQuery(ctx, author, replyTo(q.ID, "me too"))
			Expect(err).To(MatchError(service.ErrForbidden))
		})
	})

	Describe("events", func() {
		It("addresses query events to every thread participant", func() {
			q, err := svc.CreateQuery(ctx, editor, service.NewQueryInput{
				SubmissionID: submissionID, Stage: model.StageReview, Message: "hi",
				ParticipantIDs: []int64{reviewerID, authorID},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(publisher.events).To(HaveLen(1))
			ev := publisher.events[0]
			Expect(ev.ID).NotTo(BeZero())
			Expect(ev.ActorID).To(Equal(editorID))
			Expect(ev.ActorName).To(Equal("Edith"))
			Expect(*ev.QueryID).To(Equal(q.ID))
			Expect(*ev.NoteID).To(Equal(q.Notes[0].ID))
			Expect(ev.Recipients).To(ConsistOf(editorID, reviewerID, authorID))
		})

		It("addresses participant events to the affected user", func() {
			yes := true
			_, err := svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleReviewer,
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.UpdateParticipantPermissions(ctx, editor, service.UpdatePermissionsParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, RecommendOnly: &yes,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.RemoveParticipant(ctx, editor, submissionID, model.StageReview, reviewerID, model.RoleReviewer)).To(Succeed())

			Expect(publisher.events).To(HaveLen(3))
			for _, ev := range publisher.events {
				Expect(ev.Recipients).To(Equal([]int64{reviewerID}))
				Expect(*ev.UserID).To(Equal(reviewerID))
			}
			Expect(publisher.events[0].UserName).To(Equal("Ravi"))
		})

		It("publishes nothing when a close changes nothing", func() {
			q, _ := svc.CreateQuery(ctx, editor, service.NewQueryInput{
				SubmissionID: submissionID, Stage: model.StageReview, Message: "hi",
			})
			_, _, err := svc.CloseQuery(ctx, editor, submissionID, q.ID)
			Expect(err).NotTo(HaveOccurred())

			_, changed, err := svc.CloseQuery(ctx, editor, submissionID, q.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())
			Expect(publisher.types()).To(Equal([]model.EventType{
				model.EventTypeQueryCreated,
				model.EventTypeQueryClosed,
			}))
		})

		It("does not fail the operation when publishing fails", func() {
			publisher.publishFn = func(context.Context, model.WorkflowEvent) error {
				return errors.New("redis down")
			}

			p, err := svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleReviewer,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(p).NotTo(BeNil())
		})

		It("publishes nothing for failed operations", func() {
			_, err := svc.AssignParticipant(ctx, editor, service.AssignParams{
				SubmissionID: submissionID, Stage: model.StageReview, UserID: reviewerID, Role: model.RoleProofreader,
			})
			Expect(err).To(HaveOccurred())
			Expect(publisher.events).To(BeEmpty())
		})
	})

	Describe("metrics", func() {
		It("records one outcome per call", func() {
			_, _ = svc.ListParticipants(ctx, editor, submissionID)
			_, _ = svc.ListParticipants(ctx, stranger, submissionID)
			_ = svc.RemoveParticipant(ctx, editor, submissionID, model.StageReview, reviewerID, model.RoleReviewer)

			Expect(recorder.calls).To(Equal([]recordedOperation{
				{operation: "list_participants", outcome: "ok"},
				{operation: "list_participants", outcome: "forbidden"},
				{operation: "remove_participant", outcome: "not_found"},
			}))
		})
	})

	Describe("ListActivity", func() {
		It("clamps the limit and returns newest first", func() {
			for i := int64(1); i <= 3; i++ {
				_, err := db.Activity().Create(ctx, &model.ActivityLog{
					ID: i, SubmissionID: submissionID, ActorID: editorID,
					Category: model.ActivityCategoryQueries, EventType: model.EventTypeQueryCreated,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			logs, err := svc.ListActivity(ctx, author, submissionID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(2))
			Expect(logs[0].ID).To(Equal(int64(3)))

			logs, err = svc.ListActivity(ctx, author, submissionID, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(3))
		})
	})
})
