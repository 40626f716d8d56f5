package helpers

import "regexp"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// emailPattern is intentionally loose: a local part, an @, and a domain with
// at least one dot, with no whitespace anywhere. Deliverability is the
// provider's problem, not ours.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks if the provided string looks like an email address.
// It verifies the basic local@domain.tld shape only.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
