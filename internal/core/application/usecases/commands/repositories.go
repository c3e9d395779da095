// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
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

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// ShipmentUoW manages transactions for shipment registration.
	// Creating a shipment writes the aggregate and its first history entry
	// in one transaction.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		HistoryRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// UoW manages transactions across every aggregate touched by the
	// assignment workflow: the shipment, the carrier, the route catalog,
	// and the audit trail.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   carrierRepo := uow.CarrierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipmentRepoFactory
		CarrierRepoFactory
		RouteRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
