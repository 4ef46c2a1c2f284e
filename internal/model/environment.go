package model

// Environment is the deployment environment the process runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether env names the production environment.
func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
