package http

import (
	"crypto/subtle"

	"daily-updates/internal/updates"
)

// SecurityConfig holds slash command security settings.
type SecurityConfig struct {
	Token string // Shared secret; empty disables the check
}

// SecurityValidator validates slash command requests.
type SecurityValidator struct {
	config SecurityConfig
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{config: config}
}

// ValidateToken compares the supplied token with the configured secret.
func (v *SecurityValidator) ValidateToken(token string) error {
	if v.config.Token == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.config.Token)) != 1 {
		return updates.ErrUnauthorized
	}
	return nil
}
