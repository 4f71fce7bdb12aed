// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
)

// validate checks the settings every command depends on.
func (cfg *StructuredConfig) validate() error {
	if _, err := logger.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Galaxy.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidGalaxyConfigs)
	}

	return nil
}

// GalaxyView validates and returns the Galaxy connection settings.
// Both the URL and the API key are required.
func (cfg *StructuredConfig) GalaxyView() (Galaxy, error) {
	g := cfg.Galaxy
	if strings.TrimSpace(g.URL) == "" {
		return Galaxy{}, fmt.Errorf("%w: --url is required", ErrInvalidGalaxyConfigs)
	}
	if _, err := url.Parse(g.URL); err != nil {
		return Galaxy{}, fmt.Errorf("%w: %w", ErrInvalidGalaxyConfigs, err)
	}
	if strings.TrimSpace(g.Key) == "" {
		return Galaxy{}, fmt.Errorf("%w: API key missing, set --key or GALAXY_API_KEY", ErrInvalidGalaxyConfigs)
	}

	return g, nil
}

// LDAPView validates and returns the directory settings.
func (cfg *StructuredConfig) LDAPView() (LDAP, error) {
	if strings.TrimSpace(cfg.LDAP.URL) == "" {
		return LDAP{}, fmt.Errorf("%w: --ldap-url is required", ErrInvalidLDAPConfigs)
	}
	if strings.TrimSpace(cfg.LDAP.BaseDN) == "" {
		return LDAP{}, fmt.Errorf("%w: empty base DN", ErrInvalidLDAPConfigs)
	}

	return cfg.LDAP, nil
}

// SMTPView validates and returns the notification settings.
func (cfg *StructuredConfig) SMTPView() (SMTP, error) {
	if cfg.SMTP.Address == "" || cfg.SMTP.Sender == "" {
		return SMTP{}, fmt.Errorf("%w: --smtp-address and --smtp-sender are required", ErrInvalidSMTPConfigs)
	}

	return cfg.SMTP, nil
}
