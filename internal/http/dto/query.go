package dto

import (
	"strconv"
	"time"

	"journalflow.app/editorial/internal/model"
)

type CreateQueryRequest struct {
	Title          *string  `json:"title"`
	Stage          string   `json:"stage" binding:"required"`
	Message        string   `json:"message"`
	ParticipantIDs []string `json:"participant_ids" binding:"omitempty,dive,numeric"`
}

// ParseParticipantIDs converts the string ids of the request into snowflake ids.
func (r CreateQueryRequest) ParseParticipantIDs() ([]int64, error) {
	ids := make([]int64, 0, len(r.ParticipantIDs))
	for _, raw := range r.ParticipantIDs {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, v)
	}
	return ids, nil
}

type ReplyRequest struct {
	Title    *string `json:"title"`
	Contents string  `json:"contents"`
}

type NoteResponse struct {
	DateCreated time.Time `json:"date_created"`
	Title       *string   `json:"title,omitempty"`
	UserName    string    `json:"user_name"`
	Contents    string    `json:"contents"`
	ID          int64     `json:"id,string"`
	QueryID     int64     `json:"query_id,string"`
	UserID      int64     `json:"user_id,string"`
}

func ToNoteResponse(n *model.Note) *NoteResponse {
	return &NoteResponse{
		DateCreated: n.DateCreated,
		Title:       n.Title,
		UserName:    n.UserName,
		Contents:    n.Contents,
		ID:          n.ID,
		QueryID:     n.QueryID,
		UserID:      n.UserID,
	}
}

type QueryResponse struct {
	DatePosted   time.Time      `json:"date_posted"`
	DateModified time.Time      `json:"date_modified"`
	Stage        string         `json:"stage"`
	Participants []string       `json:"participants"`
	Notes        []NoteResponse `json:"notes"`
	ID           int64          `json:"id,string"`
	SubmissionID int64          `json:"submission_id,string"`
	Seq          int32          `json:"seq"`
	Closed       bool           `json:"closed"`
}

func ToQueryResponse(q *model.Query) *QueryResponse {
	participants := make([]string, 0, len(q.Participants))
	for _, id := range q.Participants {
		participants = append(participants, strconv.FormatInt(id, 10))
	}
	notes := make([]NoteResponse, 0, len(q.Notes))
	for i := range q.Notes {
		notes = append(notes, *ToNoteResponse(&q.Notes[i]))
	}
	return &QueryResponse{
		DatePosted:   q.DatePosted,
		DateModified: q.DateModified,
		Stage:        string(q.Stage),
		Participants: participants,
		Notes:        notes,
		ID:           q.ID,
		SubmissionID: q.SubmissionID,
		Seq:          q.Seq,
		Closed:       q.Closed,
	}
}

func ToQueryResponses(qs []model.Query) []QueryResponse {
	out := make([]QueryResponse, 0, len(qs))
	for i := range qs {
		out = append(out, *ToQueryResponse(&qs[i]))
	}
	return out
}

type QueryMutationResponse struct {
	Query   *QueryResponse `json:"query"`
	Message string         `json:"message"`
	OK      bool           `json:"ok"`
}

type NoteMutationResponse struct {
	Note    *NoteResponse `json:"note"`
	Message string        `json:"message"`
	OK      bool          `json:"ok"`
}

// QueriesResponse carries every query plus the open/closed split used by the queue views.
type QueriesResponse struct {
	Queries []QueryResponse `json:"queries"`
	Open    []QueryResponse `json:"open"`
	Closed  []QueryResponse `json:"closed"`
	OK      bool            `json:"ok"`
}

func ToQueriesResponse(qs []model.Query) *QueriesResponse {
	open, closed := model.PartitionQueries(qs)
	return &QueriesResponse{
		Queries: ToQueryResponses(qs),
		Open:    ToQueryResponses(open),
		Closed:  ToQueryResponses(closed),
		OK:      true,
	}
}
