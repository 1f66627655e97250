// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequisitionRepoFactory provides access to the requisition repository within a transaction.
	RequisitionRepoFactory interface {
		RequisitionRepository() ports.RequisitionRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// LogisticsRepoFactory provides access to the logistics repository within a transaction.
	LogisticsRepoFactory interface {
		LogisticsRepository() ports.LogisticsRepository
	}

	// ShipmentUoW manages transactions for shipment creation and advancement.
	// Shipment commands read logistics configuration and write both the
	// shipment and its requisition in one transaction.
	ShipmentUoW interface {
		TxManager
		RequisitionRepoFactory
		ShipmentRepoFactory
		LogisticsRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
