package services

import (
	"errors"
	"fmt"
	"sort"

	"atelier/internal/core/domain/model/tailor"
)

// Scoring weights. QC quality and remaining capacity dominate; seniority is a
// smaller nudge so a lightly loaded senior can outrank a saturated master.
const (
	qcWeight   = 40.0
	loadWeight = 40.0

	skillPointsMaster = 20.0
	skillPointsSenior = 15.0
	skillPointsJunior = 10.0
)

// ErrNotEnoughTailors is returned when the candidate pool cannot supply two
// distinct available tailors for a garment.
var ErrNotEnoughTailors = errors.New("not enough available tailors")

// NotEnoughTailorsError reports how short the candidate pool is. Required is
// always 2: one primary and one backup.
type NotEnoughTailorsError struct {
	Available int
	Required  int
}

// NewNotEnoughTailorsError creates a NotEnoughTailorsError for the given pool size.
func NewNotEnoughTailorsError(available int) *NotEnoughTailorsError {
	return &NotEnoughTailorsError{Available: available, Required: 2}
}

func (e *NotEnoughTailorsError) Error() string {
	return fmt.Sprintf("%s: %d available, %d required", ErrNotEnoughTailors, e.Available, e.Required)
}

func (e *NotEnoughTailorsError) Unwrap() error {
	return ErrNotEnoughTailors
}

// Score is the full breakdown of one tailor's suitability for a garment.
// Total is the sum of the three factors and lies in [0, 100].
type Score struct {
	Total       float64
	QCFactor    float64
	LoadFactor  float64
	SkillFactor float64
}

// RankedTailor pairs a candidate with its computed score.
type RankedTailor struct {
	Tailor *tailor.Tailor
	Score  Score
}

// TailorSelector is a domain service that scores candidate tailors and selects
// the primary/backup pair for a garment.
//
// Business rules:
//   - Only active tailors with spare capacity are considered
//   - Higher QC pass rate, lower relative load, and higher seniority score better
//   - Equal totals are broken by lexically smallest tailor ID, so a given pool
//     always produces the same pair
//   - Primary and backup are always two distinct tailors
type TailorSelector struct{}

// NewTailorSelector creates a new TailorSelector instance.
func NewTailorSelector() TailorSelector {
	return TailorSelector{}
}

// ScoreTailor computes the suitability breakdown for a single tailor:
//
//	qcFactor    = qcPassRate * 40
//	loadFactor  = (1 - currentJobCount/maxConcurrentJobs) * 40
//	skillFactor = master 20, senior 15, junior 10
func (s TailorSelector) ScoreTailor(t *tailor.Tailor) Score {
	qc := t.QCPassRate() * qcWeight
	load := (1 - float64(t.CurrentJobCount())/float64(t.MaxConcurrentJobs())) * loadWeight

	var skill float64
	switch t.SkillLevel() {
	case tailor.SkillMaster:
		skill = skillPointsMaster
	case tailor.SkillSenior:
		skill = skillPointsSenior
	case tailor.SkillJunior:
		skill = skillPointsJunior
	}

	return Score{
		Total:       qc + load + skill,
		QCFactor:    qc,
		LoadFactor:  load,
		SkillFactor: skill,
	}
}

// Rank filters the candidates down to available tailors and orders them by
// descending total score, breaking ties by lexically smallest tailor ID.
// The input slice is not modified.
func (s TailorSelector) Rank(candidates []*tailor.Tailor) ([]RankedTailor, error) {
	ranked := make([]RankedTailor, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsAvailable() {
			continue
		}
		ranked = append(ranked, RankedTailor{Tailor: c, Score: s.ScoreTailor(c)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.Total != ranked[j].Score.Total {
			return ranked[i].Score.Total > ranked[j].Score.Total
		}
		return ranked[i].Tailor.ID().String() < ranked[j].Tailor.ID().String()
	})

	return ranked, nil
}

// SelectPair picks the two top-ranked available tailors: the best as primary,
// the runner-up as backup. Returns NotEnoughTailorsError when fewer than two
// candidates survive the availability filter.
func (s TailorSelector) SelectPair(candidates []*tailor.Tailor) (primary, backup RankedTailor, err error) {
	ranked, err := s.Rank(candidates)
	if err != nil {
		return RankedTailor{}, RankedTailor{}, err
	}

	if len(ranked) < 2 {
		return RankedTailor{}, RankedTailor{}, NewNotEnoughTailorsError(len(ranked))
	}

	return ranked[0], ranked[1], nil
}
