package model

import "fmt"

// Role is the authority a participant holds at one stage of a submission.
type Role string

const (
	RoleEditor       Role = "editor"
	RoleReviewer     Role = "reviewer"
	RoleCopyeditor   Role = "copyeditor"
	RoleLayoutEditor Role = "layout_editor"
	RoleProofreader  Role = "proofreader"
)

var roles = []Role{RoleEditor, RoleReviewer, RoleCopyeditor, RoleLayoutEditor, RoleProofreader}

func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

func (r Role) Valid() bool {
	for _, known := range roles {
		if known == r {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return r, nil
}

// JournalRole is a role a user holds across a whole journal.
type JournalRole string

const (
	JournalRoleManager       JournalRole = "manager"
	JournalRoleEditor        JournalRole = "editor"
	JournalRoleSectionEditor JournalRole = "section_editor"
	JournalRoleGuestEditor   JournalRole = "guest_editor"
	JournalRoleReviewer      JournalRole = "reviewer"
	JournalRoleAuthor        JournalRole = "author"
	JournalRoleReader        JournalRole = "reader"
	JournalRoleCopyeditor    JournalRole = "copyeditor"
	JournalRoleProofreader   JournalRole = "proofreader"
	JournalRoleLayoutEditor  JournalRole = "layout_editor"
)

var journalRoles = []JournalRole{
	JournalRoleManager,
	JournalRoleEditor,
	JournalRoleSectionEditor,
	JournalRoleGuestEditor,
	JournalRoleReviewer,
	JournalRoleAuthor,
	JournalRoleReader,
	JournalRoleCopyeditor,
	JournalRoleProofreader,
	JournalRoleLayoutEditor,
}

func JournalRoles() []JournalRole {
	out := make([]JournalRole, len(journalRoles))
	copy(out, journalRoles)
	return out
}

func (r JournalRole) Valid() bool {
	for _, known := range journalRoles {
		if known == r {
			return true
		}
	}
	return false
}

// Editorial reports whether the role may manage a submission's workflow.
func (r JournalRole) Editorial() bool {
	switch r {
	case JournalRoleManager, JournalRoleEditor, JournalRoleSectionEditor:
		return true
	}
	return false
}

func ParseJournalRole(raw string) (JournalRole, error) {
	r := JournalRole(raw)
	if !r.Valid() {
		return "", fmt.Errorf("unknown journal role %q", raw)
	}
	return r, nil
}
