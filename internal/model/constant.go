package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Outcome statuses persisted for a task after a scheduling run.
const (
	TaskStatusScheduled = "scheduled"
	TaskStatusConflict  = "conflict"
)
