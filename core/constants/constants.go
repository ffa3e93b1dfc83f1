package constants

import "time"

// Database
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Context keys
const (
	ContextTokenData = "token_data"
)

// Cache
const (
	EventCacheKeyPrefix = "event:"
	EventCacheIndexKey  = "events:index"
	EventCacheTTL       = 24 * time.Hour
)

// Queue
const (
	TaskAdvanceStages      = "workflow:advance_stages"
	DefaultAdvanceCronSpec = "0 2 * * *" // nightly at 02:00
	QueueDefault           = "default"
	QueueWorkerConcurrency = 5
)
