// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition it needs; the gorm unit of
// work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// TailorRepoFactory provides access to the tailor repository within a transaction.
	TailorRepoFactory interface {
		TailorRepository() ports.TailorRepository
	}

	// LogisticsRepoFactory provides access to the logistics repository within a transaction.
	LogisticsRepoFactory interface {
		LogisticsRepository() ports.LogisticsRepository
	}

	// TimelineRepoFactory provides access to the timeline repository within a transaction.
	TimelineRepoFactory interface {
		TimelineRepository() ports.TimelineRepository
	}

	// OrderUoW manages transactions for order creation: the order, its items,
	// and the creation audit record are written atomically.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
		TimelineRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TransitionUoW manages transactions for state transitions: the order row,
	// logistics resource guards, tailor counter releases, and the audit record
	// share one transaction.
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
		TailorRepoFactory
		LogisticsRepoFactory
		TimelineRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// AssignmentUoW manages transactions for tailor assignment: item updates,
	// the two conditional counter increments, and the audit record either all
	// commit or none do.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
		TailorRepoFactory
		TimelineRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// TailorUoW manages transactions for tailor-only operations.
	TailorUoW interface {
		TxManager
		TailorRepoFactory
	}

	// TailorUoWFactory creates new tailor unit of work instances.
	TailorUoWFactory interface {
		Create() TailorUoW
	}
)
