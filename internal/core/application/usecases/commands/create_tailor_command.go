package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrCreateTailorCommandIsNotConstructed = errors.New(
	"CreateTailorCommand must be created via NewCreateTailorCommand constructor",
)

// CreateTailorCommand onboards a tailor into the workshop pool.
// MaxConcurrentJobs of zero means "use the skill level's default capacity";
// the aggregate fills it in (master 3, senior 2, junior 1).
type CreateTailorCommand struct { //nolint:recvcheck //using for validation
	tailorID          kernel.UUID
	name              string
	skillLevel        tailor.SkillLevel
	qcPassRate        float64
	maxConcurrentJobs int
	zone              string

	guard guard.ConstructorGuard
}

// NewCreateTailorCommand creates a command to onboard a tailor.
// Validates the ID, name, and skill level; pass-rate and capacity bounds are
// enforced by the aggregate.
func NewCreateTailorCommand(
	tailorID kernel.UUID,
	name string,
	skillLevel tailor.SkillLevel,
	qcPassRate float64,
	maxConcurrentJobs int,
	zone string,
) (CreateTailorCommand, error) {
	cmd := CreateTailorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTailorID(tailorID),
		cmd.setName(name),
		cmd.setSkillLevel(skillLevel),
	); err != nil {
		return CreateTailorCommand{}, err
	}

	cmd.qcPassRate = qcPassRate
	cmd.maxConcurrentJobs = maxConcurrentJobs
	cmd.zone = zone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTailorCommandIsNotConstructed if validation fails.
func (c CreateTailorCommand) Validate() error {
	return c.guard.Validate(ErrCreateTailorCommandIsNotConstructed)
}

// TailorID returns the unique identifier for the tailor.
func (c CreateTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// Name returns the tailor's display name.
func (c CreateTailorCommand) Name() string {
	return c.name
}

// SkillLevel returns the tailor's skill level.
func (c CreateTailorCommand) SkillLevel() tailor.SkillLevel {
	return c.skillLevel
}

// QCPassRate returns the tailor's historical QC pass rate.
func (c CreateTailorCommand) QCPassRate() float64 {
	return c.qcPassRate
}

// MaxConcurrentJobs returns the requested capacity, zero meaning skill default.
func (c CreateTailorCommand) MaxConcurrentJobs() int {
	return c.maxConcurrentJobs
}

// Zone returns the workshop zone the tailor works in.
func (c CreateTailorCommand) Zone() string {
	return c.zone
}

func (c *CreateTailorCommand) setTailorID(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	c.tailorID = tailorID
	return nil
}

func (c *CreateTailorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateTailorCommand) setSkillLevel(skillLevel tailor.SkillLevel) error {
	if err := skillLevel.Validate(); err != nil {
		return err
	}

	c.skillLevel = skillLevel
	return nil
}
