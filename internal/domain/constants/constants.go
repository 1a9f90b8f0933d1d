// Package constants contains configuration values that are compared across packages.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Push queue providers
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Job lease backends
const (
	LockBackendPostgres = "postgres"
	LockBackendDynamo   = "dynamodb"
)

// DefaultTimezone is used when no device has reported a timezone.
const DefaultTimezone = "UTC"
