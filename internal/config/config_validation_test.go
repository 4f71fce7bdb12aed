package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalaxyView(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Galaxy
		wantErr bool
	}{
		{name: "complete", cfg: Galaxy{URL: "https://galaxy.example.org", Key: "k"}},
		{name: "missing url", cfg: Galaxy{Key: "k"}, wantErr: true},
		{name: "missing key", cfg: Galaxy{URL: "https://galaxy.example.org"}, wantErr: true},
		{name: "blank key", cfg: Galaxy{URL: "https://galaxy.example.org", Key: "  "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{Galaxy: tt.cfg}
			got, err := cfg.GalaxyView()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidGalaxyConfigs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cfg, got)
		})
	}
}

func TestLDAPView(t *testing.T) {
	_, err := (&StructuredConfig{}).LDAPView()
	assert.ErrorIs(t, err, ErrInvalidLDAPConfigs)

	cfg := &StructuredConfig{LDAP: LDAP{URL: "ldap://x", BaseDN: "dc=x"}}
	got, err := cfg.LDAPView()
	require.NoError(t, err)
	assert.Equal(t, "ldap://x", got.URL)
}

func TestSMTPView(t *testing.T) {
	_, err := (&StructuredConfig{SMTP: SMTP{Address: "localhost:25"}}).SMTPView()
	assert.ErrorIs(t, err, ErrInvalidSMTPConfigs)

	got, err := (&StructuredConfig{SMTP: SMTP{Address: "localhost:25", Sender: "a@b"}}).SMTPView()
	require.NoError(t, err)
	assert.Equal(t, "a@b", got.Sender)
}
