package cmd

import "time"

// Config carries every setting the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AssignExclusiveCarriers dedicates a carrier to a single shipment:
	// a successful assignment marks the carrier unavailable until an
	// operator frees it again.
	AssignExclusiveCarriers bool

	// PendingAlertAfter is how long a shipment may stay pending before the
	// watch job starts logging it.
	PendingAlertAfter time.Duration
}
