package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and the command
// views when required settings are missing or invalid.
var (
	// ErrInvalidGalaxyConfigs indicates missing or malformed Galaxy settings
	// (for example, an empty URL or API key).
	ErrInvalidGalaxyConfigs = errors.New("invalid galaxy configuration")
	// ErrInvalidLDAPConfigs indicates missing LDAP settings.
	ErrInvalidLDAPConfigs = errors.New("invalid ldap configuration")
	// ErrInvalidSMTPConfigs indicates missing notification settings.
	ErrInvalidSMTPConfigs = errors.New("invalid smtp configuration")
	// ErrInvalidAppConfigs indicates invalid process-wide settings (for
	// example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
