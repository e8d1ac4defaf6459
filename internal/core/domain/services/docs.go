// Package services contains domain services: business logic that coordinates
// multiple aggregates and does not belong to any single one of them.
//
// StockReservation validates an order's requested quantities against the
// catalog and applies all stock decrements as one all-or-nothing step.
package services
