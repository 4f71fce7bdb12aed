package directory

import (
	"context"
	"errors"
	"fmt"
	"os/user"
	"strconv"

	"github.com/MKhiriev/galaxy-admin/models"
)

// SystemDirectory treats an account as present when the host resolves it
// to a regular uid (>= 1000). Resolution goes through the host's name
// service, so accounts served by LDAP or NIS count too.
type SystemDirectory struct {
	lookup func(username string) (*user.User, error)
}

// NewSystemDirectory creates a directory backed by the local account
// database.
func NewSystemDirectory() *SystemDirectory {
	return &SystemDirectory{lookup: user.Lookup}
}

// Lookup resolves username on the local host.
func (d *SystemDirectory) Lookup(ctx context.Context, username string) (models.DirectoryUser, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.DirectoryUser{}, false, err
	}

	u, err := d.lookup(username)
	var unknown user.UnknownUserError
	switch {
	case errors.As(err, &unknown):
		return models.DirectoryUser{}, false, nil
	case err != nil:
		return models.DirectoryUser{}, false, fmt.Errorf("%w: lookup %s: %w", ErrDirectoryUnavailable, username, err)
	}

	uid, err := strconv.Atoi(u.Uid)
	if err != nil || uid < minSystemUID {
		return models.DirectoryUser{}, false, nil
	}
	return models.DirectoryUser{UID: u.Username, CN: u.Name}, true, nil
}
