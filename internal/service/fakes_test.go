package service_test

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
	"journalflow.app/editorial/internal/store"
)

// memDB is an in-memory stand-in for the relational stores. It enforces the
// same keys the schema does so the ledger and thread rules can be exercised
// without Postgres.
type memDB struct {
	txMu sync.Mutex
	mu   sync.Mutex

	clock         time.Time
	users         map[int64]model.User
	journalRoles  []model.JournalRoleAssignment
	submissions   map[int64]model.Submission
	participants  []model.Participant
	queries       []model.Query
	activity      []model.ActivityLog
	notifications []model.Notification
	positions     map[[2]int64]int32

	addNoteErr error
}

type memState struct {
	participants  []model.Participant
	queries       []model.Query
	activity      []model.ActivityLog
	notifications []model.Notification
}

func newMemDB() *memDB {
	return &memDB{
		clock:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		users:       map[int64]model.User{},
		submissions: map[int64]model.Submission{},
		positions:   map[[2]int64]int32{},
	}
}

// tick advances a fake clock so timestamps are strictly increasing.
func (db *memDB) tick() time.Time {
	db.clock = db.clock.Add(time.Millisecond)
	return db.clock
}

func (db *memDB) addUser(userID int64, name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.users[userID] = model.User{ID: userID, Name: name, Email: name + "@example.org"}
}

func (db *memDB) addMember(journalID, userID int64, name string, role model.JournalRole) {
	db.addUser(userID, name)
	db.mu.Lock()
	defer db.mu.Unlock()
	db.journalRoles = append(db.journalRoles, model.JournalRoleAssignment{
		JournalID: journalID, UserID: userID, Role: role, AssignedAt: db.tick(),
	})
}

func (db *memDB) addSubmission(submissionID, journalID int64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.submissions[submissionID] = model.Submission{
		ID: submissionID, JournalID: journalID, Title: "Manuscript", CurrentStage: model.StageReview,
	}
}

func (db *memDB) noteCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	n := 0
	for _, q := range db.queries {
		n += len(q.Notes)
	}
	return n
}

func (db *memDB) queryCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.queries)
}

func (db *memDB) snapshot() memState {
	db.mu.Lock()
	defer db.mu.Unlock()
	qs := make([]model.Query, len(db.queries))
	for i, q := range db.queries {
		qs[i] = cloneQuery(q)
	}
	return memState{
		participants:  slices.Clone(db.participants),
		queries:       qs,
		activity:      slices.Clone(db.activity),
		notifications: slices.Clone(db.notifications),
	}
}

func (db *memDB) restore(s memState) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.participants = s.participants
	db.queries = s.queries
	db.activity = s.activity
	db.notifications = s.notifications
}

func cloneQuery(q model.Query) model.Query {
	q.Participants = slices.Clone(q.Participants)
	q.Notes = slices.Clone(q.Notes)
	return q
}

func (db *memDB) Submissions() store.SubmissionStore     { return memSubmissions{db} }
func (db *memDB) Participants() store.ParticipantStore   { return memParticipants{db} }
func (db *memDB) Queries() store.QueryStore              { return memQueries{db} }
func (db *memDB) Activity() store.ActivityStore          { return memActivity{db} }
func (db *memDB) Notifications() store.NotificationStore { return nil }
func (db *memDB) JournalRoles() store.JournalRoleStore   { return memJournalRoles{db} }

// memTxRunner serialises transactions and rolls state back when fn fails.
type memTxRunner struct {
	db *memDB
}

func (r memTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	r.db.txMu.Lock()
	defer r.db.txMu.Unlock()

	before := r.db.snapshot()
	if err := fn(r.db); err != nil {
		r.db.restore(before)
		return err
	}
	return nil
}

type memSubmissions struct{ db *memDB }

func (s memSubmissions) Create(_ context.Context, sub *model.Submission) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.submissions[sub.ID]; ok {
		return store.ErrAlreadyExists
	}
	s.db.submissions[sub.ID] = *sub
	return nil
}

func (s memSubmissions) GetByID(_ context.Context, id int64) (*model.Submission, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	sub, ok := s.db.submissions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sub, nil
}

func (s memSubmissions) Lock(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.submissions[id]; !ok {
		return store.ErrNotFound
	}
	return nil
}

type memParticipants struct{ db *memDB }

func (s memParticipants) Create(_ context.Context, p *model.Participant) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	user, ok := s.db.users[p.UserID]
	if !ok {
		return store.ErrNotFound
	}
	for _, existing := range s.db.participants {
		if existing.SubmissionID == p.SubmissionID && existing.Stage == p.Stage &&
			existing.UserID == p.UserID && existing.Role == p.Role {
			return store.ErrAlreadyExists
		}
	}
	p.AssignedAt = s.db.tick()
	p.UserName = user.Name
	p.UserEmail = user.Email
	s.db.participants = append(s.db.participants, *p)
	return nil
}

func (s memParticipants) UpdatePermissions(_ context.Context, params store.UpdatePermissionsParams) ([]model.Participant, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var updated []model.Participant
	for i := range s.db.participants {
		p := &s.db.participants[i]
		if p.SubmissionID != params.SubmissionID || p.Stage != params.Stage || p.UserID != params.UserID {
			continue
		}
		if params.RecommendOnly != nil {
			p.RecommendOnly = *params.RecommendOnly
		}
		if params.CanChangeMetadata != nil {
			p.CanChangeMetadata = *params.CanChangeMetadata
		}
		updated = append(updated, *p)
	}
	if len(updated) == 0 {
		return nil, store.ErrNotFound
	}
	return updated, nil
}

func (s memParticipants) Delete(_ context.Context, submissionID int64, stage model.Stage, userID int64, role model.Role) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i, p := range s.db.participants {
		if p.SubmissionID == submissionID && p.Stage == stage && p.UserID == userID && p.Role == role {
			s.db.participants = slices.Delete(s.db.participants, i, i+1)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s memParticipants) ListBySubmission(_ context.Context, submissionID int64) ([]model.Participant, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := []model.Participant{}
	for _, p := range s.db.participants {
		if p.SubmissionID == submissionID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memQueries struct{ db *memDB }

func (s memQueries) find(submissionID, queryID int64) (int, bool) {
	for i, q := range s.db.queries {
		if q.ID == queryID && q.SubmissionID == submissionID {
			return i, true
		}
	}
	return 0, false
}

func (s memQueries) NextSeq(_ context.Context, submissionID int64, stage model.Stage) (int32, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var seq int32
	for _, q := range s.db.queries {
		if q.SubmissionID == submissionID && q.Stage == stage && q.Seq > seq {
			seq = q.Seq
		}
	}
	return seq + 1, nil
}

func (s memQueries) Create(_ context.Context, q *model.Query) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, existing := range s.db.queries {
		if existing.SubmissionID == q.SubmissionID && existing.Stage == q.Stage && existing.Seq == q.Seq {
			return store.ErrAlreadyExists
		}
	}
	now := s.db.tick()
	q.DatePosted = now
	q.DateModified = now
	stored := *q
	stored.Participants = nil
	stored.Notes = nil
	s.db.queries = append(s.db.queries, stored)
	return nil
}

// AddParticipant keeps participants sorted by (position, user id), the
// order ListQueryParticipants reads them back in.
func (s memQueries) AddParticipant(_ context.Context, queryID, userID int64, position int32) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.queries {
		q := &s.db.queries[i]
		if q.ID != queryID {
			continue
		}
		if slices.Contains(q.Participants, userID) {
			return nil
		}
		s.db.positions[[2]int64{queryID, userID}] = position
		q.Participants = append(q.Participants, userID)
		slices.SortStableFunc(q.Participants, func(a, b int64) int {
			pa, pb := s.db.positions[[2]int64{queryID, a}], s.db.positions[[2]int64{queryID, b}]
			if pa != pb {
				return int(pa - pb)
			}
			return int(a - b)
		})
		return nil
	}
	return store.ErrNotFound
}

func (s memQueries) AddNote(_ context.Context, note *model.Note) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.addNoteErr != nil {
		return s.db.addNoteErr
	}
	for i := range s.db.queries {
		q := &s.db.queries[i]
		if q.ID != note.QueryID {
			continue
		}
		note.DateCreated = s.db.tick()
		q.Notes = append(q.Notes, *note)
		return nil
	}
	return store.ErrNotFound
}

func (s memQueries) GetForUpdate(_ context.Context, submissionID, queryID int64) (*model.Query, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	i, ok := s.find(submissionID, queryID)
	if !ok {
		return nil, store.ErrNotFound
	}
	q := s.db.queries[i]
	q.Participants = nil
	q.Notes = nil
	return &q, nil
}

func (s memQueries) Get(_ context.Context, submissionID, queryID int64) (*model.Query, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	i, ok := s.find(submissionID, queryID)
	if !ok {
		return nil, store.ErrNotFound
	}
	q := cloneQuery(s.db.queries[i])
	return &q, nil
}

func (s memQueries) Touch(_ context.Context, queryID int64) (time.Time, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.queries {
		q := &s.db.queries[i]
		if q.ID == queryID {
			if now := s.db.tick(); now.After(q.DateModified) {
				q.DateModified = now
			}
			return q.DateModified, nil
		}
	}
	return time.Time{}, store.ErrNotFound
}

func (s memQueries) Close(_ context.Context, submissionID, queryID int64) (*model.Query, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	i, ok := s.find(submissionID, queryID)
	if !ok || s.db.queries[i].Closed {
		return nil, store.ErrNotFound
	}
	q := &s.db.queries[i]
	q.Closed = true
	q.DateModified = s.db.tick()
	out := cloneQuery(*q)
	return &out, nil
}

func (s memQueries) List(_ context.Context, submissionID int64, stage *model.Stage) ([]model.Query, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := []model.Query{}
	for _, q := range s.db.queries {
		if q.SubmissionID != submissionID || (stage != nil && q.Stage != *stage) {
			continue
		}
		out = append(out, cloneQuery(q))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateModified.After(out[j].DateModified)
	})
	return out, nil
}

type memActivity struct{ db *memDB }

func (s memActivity) Create(_ context.Context, entry *model.ActivityLog) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, a := range s.db.activity {
		if a.ID == entry.ID {
			return false, nil
		}
	}
	entry.CreatedAt = s.db.tick()
	s.db.activity = append(s.db.activity, *entry)
	return true, nil
}

func (s memActivity) ListBySubmission(_ context.Context, submissionID int64, limit int32) ([]model.ActivityLog, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := []model.ActivityLog{}
	for i := len(s.db.activity) - 1; i >= 0 && int32(len(out)) < limit; i-- {
		if s.db.activity[i].SubmissionID == submissionID {
			out = append(out, s.db.activity[i])
		}
	}
	return out, nil
}

type memJournalRoles struct{ db *memDB }

func (s memJournalRoles) Upsert(_ context.Context, journalID, userID int64, role model.JournalRole) (*model.JournalRoleAssignment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, r := range s.db.journalRoles {
		if r.JournalID == journalID && r.UserID == userID && r.Role == role {
			return &r, nil
		}
	}
	r := model.JournalRoleAssignment{JournalID: journalID, UserID: userID, Role: role, AssignedAt: s.db.tick()}
	s.db.journalRoles = append(s.db.journalRoles, r)
	return &r, nil
}

func (s memJournalRoles) Delete(_ context.Context, journalID, userID int64, role model.JournalRole) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i, r := range s.db.journalRoles {
		if r.JournalID == journalID && r.UserID == userID && r.Role == role {
			s.db.journalRoles = slices.Delete(s.db.journalRoles, i, i+1)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s memJournalRoles) ListJournalUsers(_ context.Context, journalID int64) ([]model.JournalUser, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := []model.JournalUser{}
	index := map[int64]int{}
	for _, r := range s.db.journalRoles {
		if r.JournalID != journalID {
			continue
		}
		i, ok := index[r.UserID]
		if !ok {
			u := s.db.users[r.UserID]
			out = append(out, model.JournalUser{UserID: u.ID, Name: u.Name, Email: u.Email})
			i = len(out) - 1
			index[r.UserID] = i
		}
		out[i].Roles = append(out[i].Roles, model.JournalRoleGrant{Role: r.Role, AssignedAt: r.AssignedAt})
	}
	return out, nil
}

func (s memJournalRoles) ListByUser(_ context.Context, userID int64) ([]model.JournalRoleAssignment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := []model.JournalRoleAssignment{}
	for _, r := range s.db.journalRoles {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s memJournalRoles) IsMember(_ context.Context, journalID, userID int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, r := range s.db.journalRoles {
		if r.JournalID == journalID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
