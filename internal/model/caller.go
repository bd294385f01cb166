package model

// Caller is the authenticated identity a workflow operation runs on behalf of.
type Caller struct {
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Roles     []JournalRoleAssignment `json:"roles"`
	UserID    int64                   `json:"user_id,string"`
	SiteAdmin bool                    `json:"site_admin"`
}

func (c Caller) HasJournalRole(journalID int64, role JournalRole) bool {
	for _, r := range c.Roles {
		if r.JournalID == journalID && r.Role == role {
			return true
		}
	}
	return false
}

// InJournal reports whether the caller holds any role in the journal.
func (c Caller) InJournal(journalID int64) bool {
	if c.SiteAdmin {
		return true
	}
	for _, r := range c.Roles {
		if r.JournalID == journalID {
			return true
		}
	}
	return false
}

// CanManageWorkflow reports whether the caller may assign participants
// and open or close queries on submissions of the journal.
func (c Caller) CanManageWorkflow(journalID int64) bool {
	if c.SiteAdmin {
		return true
	}
	for _, r := range c.Roles {
		if r.JournalID == journalID && r.Role.Editorial() {
			return true
		}
	}
	return false
}

func (c Caller) CanManageJournal(journalID int64) bool {
	return c.SiteAdmin || c.HasJournalRole(journalID, JournalRoleManager)
}
