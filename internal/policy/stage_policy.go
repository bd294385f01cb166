// Package policy holds the fixed stage-to-role table that decides which
// participant roles may be assigned at each workflow stage.
package policy

import (
	"errors"
	"fmt"

	"journalflow.app/editorial/internal/model"
)

var ErrInvalidRoleForStage = errors.New("role not permitted at stage")

var allowed = map[model.Stage][]model.Role{
	model.StageSubmission:  {model.RoleEditor},
	model.StageReview:      {model.RoleEditor, model.RoleReviewer},
	model.StageCopyediting: {model.RoleEditor, model.RoleCopyeditor},
	model.StageProduction:  {model.RoleEditor, model.RoleLayoutEditor, model.RoleProofreader},
}

// AllowedRoles returns the roles assignable at stage. Unknown stages allow nothing.
func AllowedRoles(stage model.Stage) []model.Role {
	roles := allowed[stage]
	out := make([]model.Role, len(roles))
	copy(out, roles)
	return out
}

// Validate returns ErrInvalidRoleForStage unless role is assignable at stage.
func Validate(stage model.Stage, role model.Role) error {
	for _, r := range allowed[stage] {
		if r == role {
			return nil
		}
	}
	return fmt.Errorf("%w: %q at %q", ErrInvalidRoleForStage, role, stage)
}

// Stages returns the workflow stages in order.
func Stages() []model.Stage {
	return model.Stages()
}
