// Package order contains the order fulfillment domain model: the Track sum
// type, the per-track state registry with its transition validator, and the
// Order and Item aggregates.
//
// Orders move through a fixed lifecycle graph. Both tracks share the
// manufacturing spine S01..S15 (payment, measurement, pattern, print,
// cutting, stitching, QC) with rework loops at print rejection and QC
// failure. At S15_QC_PASSED the graph branches:
//
//	Track A (direct delivery):    S15 -> S17_SHIPPED -> S18_DELIVERED -> S19_COMPLETE
//	Track B (hub-manufactured):   S15 -> S20_FLIGHT_MANIFEST -> ... -> S26_DELIVERED_UAE
//
// Each track has exactly one terminal state with no outgoing edges. All
// track-specific graph knowledge lives in this package; business logic
// elsewhere never branches on track.
package order
