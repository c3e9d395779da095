// Package services contains domain services: operations that span multiple
// aggregates and therefore do not belong to any single one.
//
// AssignmentService coordinates the Shipment, Route, and Carrier aggregates
// to execute the route/carrier assignment workflow.
package services
