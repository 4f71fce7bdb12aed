package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
)

// BindFlags registers the global flags on fs and binds them to cfg. The
// returned config is the flags source passed to [Load] once fs has been
// parsed.
//
// Flags:
//
//	--url            Galaxy URL
//	--key            Galaxy API key, better set GALAXY_API_KEY
//	--timeout        request timeout (e.g. "30s", "1m")
//	--toolshed-url   tool shed URL
//	--ldap-url       LDAP server URL
//	--ldap-base-dn   LDAP subtree searched for users
//	--smtp-address   SMTP relay host:port
//	--smtp-sender    From address of notification mails
//	--audit-db       SQLite file recording every action taken
//	--config         JSON file path with configs
//	-l/--loglevel    one of debug, info, warning, error
func BindFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVar(&cfg.Galaxy.URL, "url", "", "Galaxy URL")
	fs.StringVar(&cfg.Galaxy.Key, "key", "", "API key, better set GALAXY_API_KEY env var")
	fs.DurationVar(&cfg.Galaxy.RequestTimeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Toolshed.URL, "toolshed-url", "", "Toolshed URL (default "+DefaultToolshedURL+")")
	fs.StringVar(&cfg.LDAP.URL, "ldap-url", "", "URL of the LDAP server")
	fs.StringVar(&cfg.LDAP.BaseDN, "ldap-base-dn", "", "LDAP base DN (default "+DefaultLDAPBaseDN+")")
	fs.StringVar(&cfg.SMTP.Address, "smtp-address", "", "SMTP relay host:port (default "+DefaultSMTPAddress+")")
	fs.StringVar(&cfg.SMTP.Sender, "smtp-sender", "", "Sender address of notification mails")
	fs.StringVar(&cfg.Audit.DSN, "audit-db", "", "SQLite file recording every action taken")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path")
	fs.StringVarP(&cfg.App.LogLevel, "loglevel", "l", "",
		"Provide logging level ("+strings.Join(logger.Levels, ", ")+"), default="+logger.DefaultLevel)
}
