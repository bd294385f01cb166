package model

import "fmt"

// Stage is a phase of a manuscript's editorial workflow.
type Stage string

const (
	StageSubmission  Stage = "submission"
	StageReview      Stage = "review"
	StageCopyediting Stage = "copyediting"
	StageProduction  Stage = "production"
)

var stageOrder = []Stage{
	StageSubmission,
	StageReview,
	StageCopyediting,
	StageProduction,
}

// Stages returns every stage in workflow order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

func (s Stage) Valid() bool {
	for _, st := range stageOrder {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the stage that follows s. The last stage has no successor.
func (s Stage) Next() (Stage, bool) {
	for i, st := range stageOrder {
		if st == s && i+1 < len(stageOrder) {
			return stageOrder[i+1], true
		}
	}
	return "", false
}

func (s Stage) String() string {
	return string(s)
}

func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown stage %q", raw)
	}
	return s, nil
}
