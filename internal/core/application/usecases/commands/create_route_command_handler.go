package commands

import (
	"context"

	"shipping/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles route registration.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route registration.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, command CreateRouteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newRoute, err := route.NewRoute(
		command.RouteID(),
		command.Name(),
		command.StartPoint(),
		command.EndPoint(),
		command.EstimatedDuration(),
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

	if err = uow.RouteRepository().Add(ctx, newRoute); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
