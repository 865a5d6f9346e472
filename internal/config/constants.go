package config

import "time"

// Default configuration values
const (
	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultServiceName   = "whack-engine"
	DefaultVersion       = "dev"
	DefaultEnvironment   = "dev"
	DefaultDBName        = "whack"
	DefaultSweepInterval = "30s"

	// Whole tokens, parsed with the same decimal rules as bet amounts
	DefaultPoolInitialBalance = "1000"
)

// Default database pool settings
const (
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
