package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. The shipment, its owned package, and the first history entry
// are created together in one transaction, so a registered shipment always
// has exactly one "pending" audit record.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(shipmentID, userID, origin, destination, 2.5, 30, 20, 15, "books")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment registration failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a ShipmentUoWFactory for transactional persistence operations.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Builds the package and shipment aggregates, generates the tracking number,
// and persists the shipment together with its initial history entry.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, command CreateShipmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	pkg, err := shipment.NewPackage(
		kernel.NewUUID(),
		command.Weight(),
		command.Length(),
		command.Width(),
		command.Height(),
		command.ProductType(),
	)
	if err != nil {
		return err
	}

	trackingNumber, err := kernel.GenerateTrackingNumber()
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	newShipment, err := shipment.NewShipment(
		command.ShipmentID(),
		command.UserID(),
		pkg,
		command.OriginAddress(),
		command.DestinationAddress(),
		trackingNumber,
		now,
	)
	if err != nil {
		return err
	}

	entry, err := shipment.NewHistoryEntry(
		kernel.NewUUID(),
		newShipment.ID(),
		shipment.Pending,
		shipment.NotesShipmentRegistered,
		now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
