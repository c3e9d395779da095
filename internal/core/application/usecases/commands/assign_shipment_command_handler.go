package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
)

// AssignShipmentCommandHandler orchestrates the route/carrier assignment
// workflow. It resolves the three identifiers against the store, delegates
// rule enforcement to the AssignmentService, and persists the outcome,
// all within a single transaction.
//
// Preconditions are evaluated in a fixed order, first failure wins:
//  1. shipment exists (not found otherwise)
//  2. shipment is still pending (conflict otherwise)
//  3. route exists (not found otherwise)
//  4. carrier exists (not found otherwise)
//  5. carrier is available (conflict otherwise)
//
// The shipment and carrier rows are locked without waiting while the checks
// run, so two concurrent assignments touching the same shipment or the same
// carrier cannot both pass: the second fails with a conflict and may retry
// after refreshing its view.
//
// Example:
//
//	handler := NewAssignShipmentCommandHandler(uowFactory, services.NewAssignmentService(false))
//	cmd, _ := NewAssignShipmentCommand(shipmentID, routeID, carrierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // shipment, route, or carrier does not exist
//	case errors.Is(err, errs.ErrConflict):
//	    // already assigned, carrier unavailable, or lock contention
//	case err != nil:
//	    // infrastructure failure
//	}
type AssignShipmentCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.AssignmentService
}

// NewAssignShipmentCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates across the
// shipment, carrier, and history repositories, and the AssignmentService
// carrying the carrier-availability policy.
func NewAssignShipmentCommandHandler(
	uowFactory UoWFactory,
	assigner services.AssignmentService,
) AssignShipmentCommandHandler {
	return AssignShipmentCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
	}
}

// Handle processes the assignment command.
// On success the shipment is in-transit with route and carrier bound, the
// carrier reflects the availability policy, and a new history entry records
// the transition. On any failure the store is left unchanged.
func (h AssignShipmentCommandHandler) Handle(ctx context.Context, command AssignShipmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shp, err := uow.ShipmentRepository().GetForUpdate(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	// Reject non-pending shipments before touching the catalogs, so the
	// caller learns the most fundamental reason first.
	if err = shp.ValidateAssign(); err != nil {
		return err
	}

	rt, err := uow.RouteRepository().Get(ctx, command.RouteID())
	if err != nil {
		return err
	}

	car, err := uow.CarrierRepository().GetForUpdate(ctx, command.CarrierID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if err = h.assigner.Assign(shp, rt, car, now); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, shp); err != nil {
		return err
	}

	if err = uow.CarrierRepository().Update(ctx, car); err != nil {
		return err
	}

	entry, err := shipment.NewHistoryEntry(
		kernel.NewUUID(),
		shp.ID(),
		shipment.InTransit,
		shipment.NotesRouteAndCarrierAssigned,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
