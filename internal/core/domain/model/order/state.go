package order

import (
	"errors"
	"fmt"
	"sort"
)

// State is a lifecycle state code, e.g. "S15_QC_PASSED".
// The set of valid states and the edges between them are fixed per track and
// loaded once at process start; lookups are O(1) map reads.
type State string

// Shared manufacturing spine (S01-S16), present on both tracks.
const (
	StatePaid                State = "S01_PAID"
	StateMeasurementPending  State = "S02_MEASUREMENT_PENDING"
	StateMeasurementReceived State = "S03_MEASUREMENT_RECEIVED"
	StatePatternPending      State = "S04_PATTERN_PENDING"
	StatePatternGenerated    State = "S05_PATTERN_GENERATED"
	StateSentToPrinter       State = "S06_SENT_TO_PRINTER"
	StatePrintCollected      State = "S07_PRINT_COLLECTED"
	StatePrintRejected       State = "S08_PRINT_REJECTED"
	StateDeliveredToTailor   State = "S09_DELIVERED_TO_RAJA"
	StateCuttingInProgress   State = "S10_CUTTING_IN_PROGRESS"
	StateCuttingComplete     State = "S11_CUTTING_COMPLETE"
	StateStitchingInProgress State = "S12_STITCHING_IN_PROGRESS"
	StateStitchingComplete   State = "S13_STITCHING_COMPLETE"
	StateQCInProgress        State = "S14_QC_IN_PROGRESS"
	StateQCPassed            State = "S15_QC_PASSED"
	StateQCFailed            State = "S16_QC_FAILED"
)

// Track A tail (S17-S19): direct delivery.
const (
	StateShipped   State = "S17_SHIPPED"
	StateDelivered State = "S18_DELIVERED"
	StateComplete  State = "S19_COMPLETE"
)

// Track B tail (S20-S26): air freight and last-mile delivery.
const (
	StateFlightManifest State = "S20_FLIGHT_MANIFEST"
	StateInFlight       State = "S21_IN_FLIGHT"
	StateLanded         State = "S22_LANDED"
	StateCustomsCleared State = "S23_CUSTOMS_CLEARED"
	StateVanAssigned    State = "S24_VAN_ASSIGNED"
	StateOutForDelivery State = "S25_OUT_FOR_DELIVERY"
	StateDeliveredHub   State = "S26_DELIVERED_UAE"
)

// ErrUnknownState is the sentinel for state codes absent from a track's graph.
var ErrUnknownState = errors.New("unknown state")

// UnknownStateError reports a state code that does not exist on the given track.
// An unrecognized code is always a hard error, never treated as terminal.
type UnknownStateError struct {
	State State
	Track Track
}

// NewUnknownStateError creates an UnknownStateError for the given code and track.
func NewUnknownStateError(state State, track Track) *UnknownStateError {
	return &UnknownStateError{State: state, Track: track}
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("%s: %q is not a state on track %s", ErrUnknownState, string(e.State), e.Track)
}

func (e *UnknownStateError) Unwrap() error {
	return ErrUnknownState
}

// stateLabels maps every state code to its human-readable label.
var stateLabels = map[State]string{
	StatePaid:                "Paid",
	StateMeasurementPending:  "Awaiting Measurements",
	StateMeasurementReceived: "Measurements Received",
	StatePatternPending:      "Pattern Generation Pending",
	StatePatternGenerated:    "Pattern Generated",
	StateSentToPrinter:       "Sent to Printer",
	StatePrintCollected:      "Print Collected",
	StatePrintRejected:       "Print Rejected",
	StateDeliveredToTailor:   "Delivered to Tailor",
	StateCuttingInProgress:   "Cutting",
	StateCuttingComplete:     "Cut Complete",
	StateStitchingInProgress: "Stitching",
	StateStitchingComplete:   "Stitching Complete",
	StateQCInProgress:        "Quality Check",
	StateQCPassed:            "QC Passed",
	StateQCFailed:            "QC Failed",
	StateShipped:             "Shipped (UK)",
	StateDelivered:           "Delivered (UK)",
	StateComplete:            "Complete",
	StateFlightManifest:      "On Flight Manifest",
	StateInFlight:            "In Flight",
	StateLanded:              "Landed in UAE",
	StateCustomsCleared:      "Customs Cleared",
	StateVanAssigned:         "Van Assigned",
	StateOutForDelivery:      "Out for Delivery",
	StateDeliveredHub:        "Delivered (UAE)",
}

// terminalStates maps each track to its single terminal state.
var terminalStates = map[Track]State{
	TrackA: StateComplete,
	TrackB: StateDeliveredHub,
}

// trackTransitions holds one immutable adjacency map per track, built once at
// package init. Terminal states are present as keys with empty edge sets.
var trackTransitions = map[Track]map[State][]State{
	TrackA: buildTransitions(TrackA),
	TrackB: buildTransitions(TrackB),
}

// buildTransitions assembles the full adjacency map for one track: the shared
// manufacturing spine plus the track's own tail after the S15 branch point.
func buildTransitions(track Track) map[State][]State {
	m := map[State][]State{
		StatePaid:                {StateMeasurementPending},
		StateMeasurementPending:  {StateMeasurementReceived},
		StateMeasurementReceived: {StatePatternPending},
		StatePatternPending:      {StatePatternGenerated},
		StatePatternGenerated:    {StateSentToPrinter},
		StateSentToPrinter:       {StatePrintCollected, StatePrintRejected},
		StatePrintCollected:      {StateDeliveredToTailor},
		StatePrintRejected:       {StateSentToPrinter},
		StateDeliveredToTailor:   {StateCuttingInProgress},
		StateCuttingInProgress:   {StateCuttingComplete},
		StateCuttingComplete:     {StateStitchingInProgress},
		StateStitchingInProgress: {StateStitchingComplete},
		StateStitchingComplete:   {StateQCInProgress},
		StateQCInProgress:        {StateQCPassed, StateQCFailed},
		StateQCFailed:            {StateStitchingInProgress},
	}

	switch track {
	case TrackA:
		m[StateQCPassed] = []State{StateShipped}
		m[StateShipped] = []State{StateDelivered}
		m[StateDelivered] = []State{StateComplete}
		m[StateComplete] = []State{}
	case TrackB:
		m[StateQCPassed] = []State{StateFlightManifest}
		m[StateFlightManifest] = []State{StateInFlight}
		m[StateInFlight] = []State{StateLanded}
		m[StateLanded] = []State{StateCustomsCleared}
		m[StateCustomsCleared] = []State{StateVanAssigned}
		m[StateVanAssigned] = []State{StateOutForDelivery}
		m[StateOutForDelivery] = []State{StateDeliveredHub}
		m[StateDeliveredHub] = []State{}
	}

	return m
}

// ValidNextStates returns the set of states reachable in one transition from
// the given state on the given track. A terminal state yields an empty slice.
// Returns UnknownStateError if the code does not exist on the track.
func ValidNextStates(state State, track Track) ([]State, error) {
	if err := track.Validate(); err != nil {
		return nil, err
	}

	next, ok := trackTransitions[track][state]
	if !ok {
		return nil, NewUnknownStateError(state, track)
	}

	out := make([]State, len(next))
	copy(out, next)
	return out, nil
}

// IsTerminal reports whether the state is the track's terminal state.
// Returns UnknownStateError if the code does not exist on the track.
func IsTerminal(state State, track Track) (bool, error) {
	if err := track.Validate(); err != nil {
		return false, err
	}

	if _, ok := trackTransitions[track][state]; !ok {
		return false, NewUnknownStateError(state, track)
	}

	return terminalStates[track] == state, nil
}

// TerminalState returns the single terminal state of a track.
func TerminalState(track Track) State {
	return terminalStates[track]
}

// AllStates returns every state on the track's graph in stable lexical order.
func AllStates(track Track) []State {
	states := make([]State, 0, len(trackTransitions[track]))
	for s := range trackTransitions[track] {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// Label returns the human-readable label for the state, or the raw code for
// codes outside the registry.
func (s State) Label() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return string(s)
}

// String returns the raw state code.
func (s State) String() string {
	return string(s)
}
