package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/galaxy-admin/internal/config"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/models"
)

type fakeConn struct {
	entries  []*ldap.Entry
	err      error
	searches int
	closed   bool
	lastReq  *ldap.SearchRequest
}

func (c *fakeConn) SearchWithPaging(req *ldap.SearchRequest, _ uint32) (*ldap.SearchResult, error) {
	c.searches++
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return &ldap.SearchResult{Entries: c.entries}, nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func newTestDirectory(conn *fakeConn, dialErr error) (*LDAPDirectory, *int) {
	dials := 0
	d := NewLDAPDirectory(config.LDAP{URL: "ldap://ldap.test", BaseDN: "ou=people,dc=test"}, logger.Nop())
	d.dial = func(string) (searcher, error) {
		dials++
		if dialErr != nil {
			return nil, dialErr
		}
		return conn, nil
	}
	return d, &dials
}

func TestLDAPDirectory_Lookup(t *testing.T) {
	conn := &fakeConn{entries: []*ldap.Entry{
		ldap.NewEntry("uid=alice,ou=people,dc=test", map[string][]string{
			"uid": {"alice"}, "cn": {"Alice Liddell"}, "mail": {"alice@x.org"},
		}),
		ldap.NewEntry("ou=people,dc=test", map[string][]string{"ou": {"people"}}),
		ldap.NewEntry("uid=bob,ou=people,dc=test", map[string][]string{"uid": {"bob"}}),
	}}
	d, dials := newTestDirectory(conn, nil)

	u, ok, err := d.Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.DirectoryUser{UID: "alice", CN: "Alice Liddell", Mail: "alice@x.org"}, u)

	_, ok, err = d.Lookup(context.Background(), "carol")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := d.Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// entries are read once
	assert.Equal(t, 1, *dials)
	assert.Equal(t, 1, conn.searches)
	assert.True(t, conn.closed)
	assert.Equal(t, "ou=people,dc=test", conn.lastReq.BaseDN)
	assert.Equal(t, "(objectClass=*)", conn.lastReq.Filter)
	assert.Equal(t, []string{"uid", "cn", "mail"}, conn.lastReq.Attributes)
}

func TestLDAPDirectory_Errors(t *testing.T) {
	t.Run("dial", func(t *testing.T) {
		d, _ := newTestDirectory(nil, errors.New("connection refused"))
		_, _, err := d.Lookup(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	})

	t.Run("search", func(t *testing.T) {
		conn := &fakeConn{err: errors.New("size limit exceeded")}
		d, dials := newTestDirectory(conn, nil)

		_, _, err := d.Lookup(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrDirectoryUnavailable)

		// a failed load is retried
		_, _, err = d.Lookup(context.Background(), "alice")
		require.Error(t, err)
		assert.Equal(t, 2, *dials)
	})

	t.Run("cancelled", func(t *testing.T) {
		d, dials := newTestDirectory(&fakeConn{}, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := d.Lookup(ctx, "alice")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, *dials)
	})
}
