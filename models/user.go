// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a Galaxy user account as returned by the users endpoint.
type User struct {
	// ID is the encoded user identifier.
	ID string `json:"id"`

	// Username is the public name, unique per instance.
	Username string `json:"username"`

	// Email is the login address of the user. Galaxy also names the
	// private role of each user after this address.
	Email string `json:"email"`

	// Deleted reports whether the account is marked deleted.
	Deleted bool `json:"deleted,omitempty"`

	// Purged reports whether the account data has been purged.
	Purged bool `json:"purged,omitempty"`
}

// Role is a Galaxy access role.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// History is the reduced history view used for storage accounting.
type History struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Size   int64  `json:"size"`
}

// DirectoryUser is an account entry of the organisation's LDAP directory.
type DirectoryUser struct {
	UID  string
	CN   string
	Mail string
}

// Whoami is the account the API key authenticates as.
type Whoami struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GalaxyConfig holds the subset of the instance configuration consumed by
// the maintenance commands.
type GalaxyConfig struct {
	UserLibraryImportDir string `json:"user_library_import_dir"`
}

// Version is the Galaxy release reported by the version endpoint.
type Version struct {
	VersionMajor string `json:"version_major"`
	VersionMinor string `json:"version_minor"`
}

// String renders the version as "major.minor".
func (v Version) String() string {
	if v.VersionMinor == "" {
		return v.VersionMajor
	}
	return v.VersionMajor + "." + v.VersionMinor
}
