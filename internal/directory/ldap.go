package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-ldap/ldap/v3"

	"github.com/MKhiriev/galaxy-admin/internal/config"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/models"
)

const ldapPageSize = 500

var ldapAttributes = []string{"uid", "cn", "mail"}

// searcher is the part of *ldap.Conn used here.
type searcher interface {
	SearchWithPaging(req *ldap.SearchRequest, pagingSize uint32) (*ldap.SearchResult, error)
	Close() error
}

// LDAPDirectory reads all people entries below the base DN once, on the
// first lookup, and answers later lookups from memory.
type LDAPDirectory struct {
	cfg    config.LDAP
	logger *logger.Logger
	dial   func(url string) (searcher, error)

	mu     sync.Mutex
	loaded bool
	users  map[string]models.DirectoryUser
}

// NewLDAPDirectory creates a directory backed by the server in cfg. The
// connection is bound anonymously.
func NewLDAPDirectory(cfg config.LDAP, log *logger.Logger) *LDAPDirectory {
	return &LDAPDirectory{
		cfg:    cfg,
		logger: log,
		dial: func(url string) (searcher, error) {
			return ldap.DialURL(url)
		},
	}
}

// Lookup returns the entry whose uid is username.
func (d *LDAPDirectory) Lookup(ctx context.Context, username string) (models.DirectoryUser, bool, error) {
	if err := d.load(ctx); err != nil {
		return models.DirectoryUser{}, false, err
	}

	u, ok := d.users[username]
	return u, ok, nil
}

// Users returns the number of entries read from the server.
func (d *LDAPDirectory) Users(ctx context.Context) (int, error) {
	if err := d.load(ctx); err != nil {
		return 0, err
	}
	return len(d.users), nil
}

func (d *LDAPDirectory) load(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := d.dial(d.cfg.URL)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %w", ErrDirectoryUnavailable, d.cfg.URL, err)
	}
	defer conn.Close()

	req := ldap.NewSearchRequest(
		d.cfg.BaseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		"(objectClass=*)",
		ldapAttributes,
		nil,
	)
	res, err := conn.SearchWithPaging(req, ldapPageSize)
	if err != nil {
		return fmt.Errorf("%w: search %s: %w", ErrDirectoryUnavailable, d.cfg.BaseDN, err)
	}

	users := make(map[string]models.DirectoryUser, len(res.Entries))
	for _, e := range res.Entries {
		uid := e.GetAttributeValue("uid")
		if uid == "" {
			continue
		}
		users[uid] = models.DirectoryUser{
			UID:  uid,
			CN:   e.GetAttributeValue("cn"),
			Mail: e.GetAttributeValue("mail"),
		}
	}

	d.users = users
	d.loaded = true
	d.logger.Info().Msgf("Found %d users in LDAP", len(users))
	return nil
}
