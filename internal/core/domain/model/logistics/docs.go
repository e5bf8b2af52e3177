// Package logistics contains the capacity-bounded logistics resources of the
// hub-manufactured track: QC stations, delivery vans, and charter flights.
//
// These resources follow the same capacity-invariant discipline as tailors
// (load never exceeds capacity, counters mutated only through orchestration)
// but are fungible within a zone: they are filtered, not scored.
package logistics
