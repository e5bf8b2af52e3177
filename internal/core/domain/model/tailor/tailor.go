// Package tailor contains the Tailor production resource aggregate.
//
// A tailor's job counter is the system's contended shared state. The
// aggregate enforces 0 <= currentJobCount <= maxConcurrentJobs on every
// mutation; the persistence layer additionally re-validates capacity at
// commit time so concurrent assignments cannot push a tailor over capacity.
// Counters are only ever mutated by the assignment orchestration, never by
// direct external writes.
package tailor

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrTailorIsNotConstructed is returned when a Tailor instance was not created
	// through the NewTailor or RestoreTailor factory functions.
	ErrTailorIsNotConstructed = errors.New("Tailor must be created via NewTailor constructor")

	// ErrNameIsRequired is returned when attempting to create a tailor without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrNoSpareCapacity is returned by TakeJob when the tailor is already at
	// maximum concurrent jobs.
	ErrNoSpareCapacity = errors.New("tailor has no spare capacity")

	// ErrNoJobsInProgress is returned by ReleaseJob when the counter is already zero.
	ErrNoJobsInProgress = errors.New("tailor has no jobs in progress")
)

// Tailor is a production resource that cuts and stitches garments.
//
// Invariants:
//   - Name is non-empty, skill level is a known grade
//   - QC pass rate lies in [0, 1]
//   - 0 <= currentJobCount <= maxConcurrentJobs at all times
type Tailor struct {
	// id uniquely identifies the tailor
	id kernel.UUID

	// name is the human-readable name
	name string

	// skillLevel grades the tailor's craftsmanship
	skillLevel SkillLevel

	// qcPassRate is the historical share of garments passing QC first time
	qcPassRate float64

	// maxConcurrentJobs bounds the number of jobs in progress
	maxConcurrentJobs int

	// currentJobCount is the number of jobs in progress
	currentJobCount int

	// zone is the geographic zone the tailor works in ("" when unzoned)
	zone string

	// isActive marks whether the tailor currently accepts work
	isActive bool

	// guard ensures the tailor was created via a factory function
	guard guard.ConstructorGuard
}

// NewTailor creates an active Tailor with zero jobs in progress.
// A non-positive maxConcurrentJobs selects the skill grade's default capacity.
func NewTailor(
	id kernel.UUID,
	name string,
	skillLevel SkillLevel,
	qcPassRate float64,
	maxConcurrentJobs int,
	zone string,
) (*Tailor, error) {
	if maxConcurrentJobs <= 0 {
		maxConcurrentJobs = skillLevel.DefaultCapacity()
	}

	t := &Tailor{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSkillLevel(skillLevel),
		t.setQCPassRate(qcPassRate),
		t.setCapacity(maxConcurrentJobs, 0),
	); err != nil {
		return nil, err
	}

	t.zone = zone
	return t, nil
}

// RestoreTailor reconstructs a Tailor from persistent storage, including its
// current job count and active flag. Counts violating the capacity invariant
// are rejected rather than clamped.
func RestoreTailor(
	id kernel.UUID,
	name string,
	skillLevel SkillLevel,
	qcPassRate float64,
	maxConcurrentJobs int,
	currentJobCount int,
	zone string,
	isActive bool,
) (*Tailor, error) {
	t := &Tailor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSkillLevel(skillLevel),
		t.setQCPassRate(qcPassRate),
		t.setCapacity(maxConcurrentJobs, currentJobCount),
	); err != nil {
		return nil, err
	}

	t.zone = zone
	t.isActive = isActive
	return t, nil
}

// Validate ensures the Tailor instance was properly constructed.
func (t *Tailor) Validate() error {
	if t == nil {
		return ErrTailorIsNotConstructed
	}
	return t.guard.Validate(ErrTailorIsNotConstructed)
}

// IsEqual compares two tailors by their unique identifiers.
func (t *Tailor) IsEqual(other *Tailor) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tailor's unique identifier.
func (t *Tailor) ID() kernel.UUID {
	return t.id
}

// Name returns the tailor's name.
func (t *Tailor) Name() string {
	return t.name
}

// SkillLevel returns the tailor's skill grade.
func (t *Tailor) SkillLevel() SkillLevel {
	return t.skillLevel
}

// QCPassRate returns the historical first-time QC pass rate in [0, 1].
func (t *Tailor) QCPassRate() float64 {
	return t.qcPassRate
}

// MaxConcurrentJobs returns the job capacity bound.
func (t *Tailor) MaxConcurrentJobs() int {
	return t.maxConcurrentJobs
}

// CurrentJobCount returns the number of jobs in progress.
func (t *Tailor) CurrentJobCount() int {
	return t.currentJobCount
}

// Zone returns the tailor's geographic zone, or "" when unzoned.
func (t *Tailor) Zone() string {
	return t.zone
}

// IsActive reports whether the tailor currently accepts work.
func (t *Tailor) IsActive() bool {
	return t.isActive
}

// HasSpareCapacity reports whether at least one more job fits.
func (t *Tailor) HasSpareCapacity() bool {
	return t.currentJobCount < t.maxConcurrentJobs
}

// IsAvailable reports whether the tailor can be offered work right now:
// active and below capacity. This predicate is evaluated at read time on
// every request; availability is never cached across requests.
func (t *Tailor) IsAvailable() bool {
	return t.isActive && t.HasSpareCapacity()
}

// TakeJob increments the job counter by exactly one.
// Fails with ErrNoSpareCapacity at the capacity bound; the counter never
// exceeds maxConcurrentJobs.
func (t *Tailor) TakeJob() error {
	if !t.HasSpareCapacity() {
		return ErrNoSpareCapacity
	}
	t.currentJobCount++
	return nil
}

// ReleaseJob decrements the job counter by exactly one.
// Fails with ErrNoJobsInProgress at zero; the counter never goes negative.
func (t *Tailor) ReleaseJob() error {
	if t.currentJobCount == 0 {
		return ErrNoJobsInProgress
	}
	t.currentJobCount--
	return nil
}

// Deactivate takes the tailor out of the candidate pool.
// Jobs in progress are unaffected.
func (t *Tailor) Deactivate() {
	t.isActive = false
}

// Activate returns the tailor to the candidate pool.
func (t *Tailor) Activate() {
	t.isActive = true
}

// setID validates and sets the tailor's unique identifier.
func (t *Tailor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// setName validates and sets the tailor's name.
func (t *Tailor) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

// setSkillLevel validates and sets the skill grade.
func (t *Tailor) setSkillLevel(skillLevel SkillLevel) error {
	if err := skillLevel.Validate(); err != nil {
		return err
	}
	t.skillLevel = skillLevel
	return nil
}

// setQCPassRate validates and sets the pass rate.
func (t *Tailor) setQCPassRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return errs.NewValueIsOutOfRangeError("qcPassRate", rate, 0.0, 1.0)
	}
	t.qcPassRate = rate
	return nil
}

// setCapacity validates the capacity invariant and sets both counters.
func (t *Tailor) setCapacity(maxConcurrentJobs, currentJobCount int) error {
	if maxConcurrentJobs <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxConcurrentJobs",
			fmt.Errorf("%d is not greater than 0", maxConcurrentJobs))
	}
	if currentJobCount < 0 || currentJobCount > maxConcurrentJobs {
		return errs.NewValueIsOutOfRangeError("currentJobCount", currentJobCount, 0, maxConcurrentJobs)
	}

	t.maxConcurrentJobs = maxConcurrentJobs
	t.currentJobCount = currentJobCount
	return nil
}
