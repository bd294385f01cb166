package model

import "time"

// Query is a discussion thread scoped to a submission and stage.
// Notes are ordered oldest first and never empty once created.
type Query struct {
	DatePosted   time.Time `json:"date_posted"`
	DateModified time.Time `json:"date_modified"`
	Stage        Stage     `json:"stage"`
	Participants []int64   `json:"participants"`
	Notes        []Note    `json:"notes"`
	ID           int64     `json:"id,string"`
	SubmissionID int64     `json:"submission_id,string"`
	Seq          int32     `json:"seq"`
	Closed       bool      `json:"closed"`
}

type Note struct {
	DateCreated time.Time `json:"date_created"`
	Title       *string   `json:"title,omitempty"`
	UserName    string    `json:"user_name"`
	Contents    string    `json:"contents"`
	ID          int64     `json:"id,string"`
	QueryID     int64     `json:"query_id,string"`
	UserID      int64     `json:"user_id,string"`
}

// HasParticipant reports whether userID is named on the thread.
func (q *Query) HasParticipant(userID int64) bool {
	for _, id := range q.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// PartitionQueries splits queries into open and closed, keeping input order.
func PartitionQueries(qs []Query) (open, closed []Query) {
	open = make([]Query, 0, len(qs))
	closed = make([]Query, 0)
	for _, q := range qs {
		if q.Closed {
			closed = append(closed, q)
			continue
		}
		open = append(open, q)
	}
	return open, closed
}
