// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TailorSelector: a domain service that scores available tailors and picks
//     the primary/backup pair for a garment
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
