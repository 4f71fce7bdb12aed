// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"GALAXY_ADMIN_CONFIG":    "/path/to/config.json",
		"GALAXY_ADMIN_LOGLEVEL":  "debug",
		"GALAXY_URL":             "https://galaxy.example.org",
		"GALAXY_API_KEY":         "secret",
		"GALAXY_REQUEST_TIMEOUT": "30s",
		"TOOLSHED_URL":           "https://testtoolshed.g2.bx.psu.edu/",
		"LDAP_URL":               "ldap://ldap.example.org",
		"LDAP_BASE_DN":           "ou=people,dc=example,dc=org",
		"SMTP_ADDRESS":           "mail.example.org:25",
		"SMTP_SENDER":            "galaxy@example.org",
		"AUDIT_DB":               "/var/lib/galaxy-admin/audit.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://galaxy.example.org", cfg.Galaxy.URL)
	assert.Equal(t, "secret", cfg.Galaxy.Key)
	assert.Equal(t, 30*time.Second, cfg.Galaxy.RequestTimeout)
	assert.Equal(t, "https://testtoolshed.g2.bx.psu.edu/", cfg.Toolshed.URL)
	assert.Equal(t, "ldap://ldap.example.org", cfg.LDAP.URL)
	assert.Equal(t, "ou=people,dc=example,dc=org", cfg.LDAP.BaseDN)
	assert.Equal(t, "mail.example.org:25", cfg.SMTP.Address)
	assert.Equal(t, "galaxy@example.org", cfg.SMTP.Sender)
	assert.Equal(t, "/var/lib/galaxy-admin/audit.db", cfg.Audit.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("GALAXY_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}
