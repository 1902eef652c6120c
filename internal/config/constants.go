// internal/config/constants.go
package config

import "time"

const (
	AppName    = "vocab_trainer"
	AppVersion = "0.3.0"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	DefaultServerPort     = ":8080"
	DefaultRequestTimeout = 25 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = DriverSQLite
	DefaultDatabaseURL    = "file:vocab_trainer.db?_foreign_keys=on"
	DefaultAppReviewLimit = 20
	DefaultAuthEnabled    = true
	DefaultAccessTokenTTL = 24 * time.Hour
)
