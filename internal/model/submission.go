package model

type Submission struct {
	Title        string `json:"title"`
	CurrentStage Stage  `json:"current_stage"`
	ID           int64  `json:"id,string"`
	JournalID    int64  `json:"journal_id,string"`
}
