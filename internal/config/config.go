// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied after all sources have been merged.
const (
	DefaultRequestTimeout = 60 * time.Second
	DefaultToolshedURL    = "https://toolshed.g2.bx.psu.edu/"
	DefaultSMTPAddress    = "localhost:25"
	DefaultLDAPBaseDN     = "ou=people,dc=ufz,dc=de"
)

// StructuredConfig is the top-level configuration container shared by all
// galaxy-admin commands. It is populated by merging values from flags,
// environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Galaxy holds the address and credentials of the managed instance.
	Galaxy Galaxy `envPrefix:"GALAXY_"`

	// Toolshed holds the address of the tool shed queried for categories.
	Toolshed Toolshed `envPrefix:"TOOLSHED_"`

	// LDAP holds the directory used to decide which users are still present.
	LDAP LDAP `envPrefix:"LDAP_"`

	// SMTP holds the relay used for quota notifications.
	SMTP SMTP `envPrefix:"SMTP_"`

	// Audit holds the optional action ledger settings.
	Audit Audit `envPrefix:"AUDIT_"`

	// App holds process-wide settings such as the log level.
	App App `envPrefix:"GALAXY_ADMIN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the GALAXY_ADMIN_CONFIG environment variable or the
	// --config flag.
	JSONFilePath string `env:"GALAXY_ADMIN_CONFIG"`
}

// Galaxy holds connection settings for the Galaxy REST API.
type Galaxy struct {
	// URL is the base URL of the instance (e.g. "https://galaxy.example.org").
	// Env: GALAXY_URL
	URL string `env:"URL"`

	// Key is the API key sent with every request. An admin key is
	// required for most commands.
	// Env: GALAXY_API_KEY
	Key string `env:"API_KEY"`

	// RequestTimeout bounds a single HTTP round trip (e.g. "30s").
	// Env: GALAXY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Toolshed holds connection settings for a Galaxy tool shed.
type Toolshed struct {
	// URL is the tool shed base URL.
	// Env: TOOLSHED_URL
	URL string `env:"URL"`
}

// LDAP holds directory connection settings.
type LDAP struct {
	// URL is the LDAP server URL (e.g. "ldap://ldap.example.org").
	// Env: LDAP_URL
	URL string `env:"URL"`

	// BaseDN is the subtree searched for people entries.
	// Env: LDAP_BASE_DN
	BaseDN string `env:"BASE_DN"`
}

// SMTP holds the mail relay used for notifications.
type SMTP struct {
	// Address is the relay in "host:port" form.
	// Env: SMTP_ADDRESS
	Address string `env:"ADDRESS"`

	// Sender is the From address of notifications.
	// Env: SMTP_SENDER
	Sender string `env:"SENDER"`
}

// Audit holds the settings of the SQLite action ledger.
type Audit struct {
	// DSN is the path of the SQLite database. Empty disables the ledger.
	// Env: AUDIT_DB
	DSN string `env:"DB"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is one of debug, info, warning, error.
	// Env: GALAXY_ADMIN_LOGLEVEL
	LogLevel string `env:"LOGLEVEL"`
}

// Load merges flagCfg (the values bound to command-line flags) with the
// environment, the optional JSON file and the built-in defaults.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func Load(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Galaxy:   Galaxy{RequestTimeout: DefaultRequestTimeout},
		Toolshed: Toolshed{URL: DefaultToolshedURL},
		LDAP:     LDAP{BaseDN: DefaultLDAPBaseDN},
		SMTP:     SMTP{Address: DefaultSMTPAddress},
		App:      App{LogLevel: "warning"},
	}
}
