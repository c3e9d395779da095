package http

import "shipping/internal/core/application/usecases/queries"

func toShipmentContracts(shipments []queries.ShipmentResponse) []Shipment {
	response := make([]Shipment, len(shipments))
	for i, shp := range shipments {
		response[i] = toShipmentContract(shp)
	}
	return response
}

func toShipmentContract(shp queries.ShipmentResponse) Shipment {
	contract := Shipment{
		ID:                 shp.ID.Bytes(),
		UserID:             shp.UserID.Bytes(),
		TrackingNumber:     shp.TrackingNumber,
		Status:             shp.Status,
		OriginAddress:      shp.OriginAddress,
		DestinationAddress: shp.DestinationAddress,
		Package: Package{
			Weight:      shp.Package.Weight,
			Length:      shp.Package.Length,
			Width:       shp.Package.Width,
			Height:      shp.Package.Height,
			ProductType: shp.Package.ProductType,
		},
		CreatedAt: shp.CreatedAt,
		UpdatedAt: shp.UpdatedAt,
	}

	if shp.RouteID != nil {
		routeID := shp.RouteID.Bytes()
		contract.RouteID = &routeID
	}
	if shp.CarrierID != nil {
		carrierID := shp.CarrierID.Bytes()
		contract.CarrierID = &carrierID
	}

	return contract
}

func toShipmentDetailContract(detail queries.ShipmentDetailResponse) ShipmentDetail {
	contract := ShipmentDetail{
		Shipment: toShipmentContract(detail.ShipmentResponse),
		History:  toHistoryContracts(detail.History),
	}

	if detail.Route != nil {
		route := toRouteContract(*detail.Route)
		contract.Route = &route
	}
	if detail.Carrier != nil {
		carrier := toCarrierContract(*detail.Carrier)
		contract.Carrier = &carrier
	}

	return contract
}

func toHistoryContracts(history []queries.HistoryEntryResponse) []HistoryEntry {
	response := make([]HistoryEntry, len(history))
	for i, entry := range history {
		response[i] = HistoryEntry{
			ID:        entry.ID.Bytes(),
			Status:    entry.Status,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		}
	}
	return response
}

func toRouteContract(rt queries.RouteResponse) Route {
	return Route{
		ID:                rt.ID.Bytes(),
		Name:              rt.Name,
		StartPoint:        rt.StartPoint,
		EndPoint:          rt.EndPoint,
		EstimatedDuration: rt.EstimatedDuration,
	}
}

func toCarrierContract(car queries.CarrierResponse) Carrier {
	return Carrier{
		ID:          car.ID.Bytes(),
		Name:        car.Name,
		VehicleType: car.VehicleType,
		Capacity:    car.Capacity,
		Available:   car.Available,
	}
}
