package example

type Stage string

const (
	StageSubmission Stage = "submission"
	StageReview     Stage = "review"
)

type Role string

const (
	RoleEditor   Role = "editor"
	RoleReviewer Role = "reviewer"
)

type JournalRole string

const (
	JournalRoleManager JournalRole = "manager"
)

type Participant struct {
	Stage Stage
	Role  Role
	Note  string
}

type Grant struct {
	Role JournalRole
}

func bad() {
	p := &Participant{}
	p.Stage = "peer_review" // want "enum field Stage assigned string literal"
	p.Role = "chief"        // want "enum field Role assigned string literal"

	_ = Participant{Stage: StageReview, Role: "referee"} // want "enum field Role set to string literal"
	_ = Grant{Role: "owner"}                             // want "enum field Role set to string literal"
}

func good() {
	p := &Participant{}
	p.Stage = StageReview // OK: using constant
	p.Role = RoleReviewer
	p.Note = "free text" // OK: not an enum

	_ = Participant{Stage: StageSubmission, Role: RoleEditor, Note: "hello"}
	_ = Grant{Role: JournalRoleManager}
}

func alsoGood() {
	// OK: Variable, not literal
	stage := StageReview
	p := &Participant{Stage: stage}
	_ = p
}
