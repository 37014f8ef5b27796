package model

// Scope carries the identity of the caller through use-case operations.
// The core parsing engine never reads it; only persistence operations do.
type Scope struct {
	OwnerID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
