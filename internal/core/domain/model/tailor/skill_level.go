package tailor

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// SkillLevel grades a tailor's craftsmanship. The level feeds the assignment
// scoring as a flat bonus and determines the default concurrent job capacity.
type SkillLevel string

const (
	SkillJunior SkillLevel = "junior"
	SkillSenior SkillLevel = "senior"
	SkillMaster SkillLevel = "master"
)

// Validate checks that the skill level is one of the known grades.
func (s SkillLevel) Validate() error {
	switch s {
	case SkillJunior, SkillSenior, SkillMaster:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("skillLevel",
			fmt.Errorf("%q is not a valid skill level", string(s)))
	}
}

// DefaultCapacity returns the default maximum concurrent jobs for the grade:
// masters run three parallel jobs, seniors two, juniors one.
func (s SkillLevel) DefaultCapacity() int {
	switch s {
	case SkillMaster:
		return 3
	case SkillSenior:
		return 2
	default:
		return 1
	}
}

// String returns the skill grade name.
func (s SkillLevel) String() string {
	return string(s)
}
