package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application: database connection, HTTP port, checkout constants, the
// delivery assignment cap, and the background sweep schedules.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// MaxActiveDeliveries caps how many undelivered legs one agent may hold.
	MaxActiveDeliveries int

	// StaleOrderMaxAge is how long an order may sit pending before the
	// sweep cancels it.
	StaleOrderMaxAge time.Duration

	// StaleOrderSchedule and BulkOrderSchedule are six-field cron
	// expressions (with seconds) for the background sweeps.
	StaleOrderSchedule string
	BulkOrderSchedule  string
}
