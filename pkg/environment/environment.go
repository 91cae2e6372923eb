package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps s to a known environment. Unknown and empty values map to
// Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is production.
func (e Environment) IsProduction() bool {
	return Parse(string(e)) == Production
}

// IsStaging reports whether e is staging.
func (e Environment) IsStaging() bool {
	return Parse(string(e)) == Staging
}

// IsDevelopment reports whether e is development or unknown.
func (e Environment) IsDevelopment() bool {
	return Parse(string(e)) == Development
}
