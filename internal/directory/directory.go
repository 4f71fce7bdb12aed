// Package directory answers whether an account still exists in the
// organisation. [LDAPDirectory] asks the people subtree of an LDAP server;
// [SystemDirectory] asks the account database of the local host.
package directory

import "errors"

// ErrDirectoryUnavailable is returned when the directory cannot be read.
var ErrDirectoryUnavailable = errors.New("directory unavailable")

// minSystemUID is the lowest uid of regular (non-system) accounts.
const minSystemUID = 1000
