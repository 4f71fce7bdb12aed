// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QuotaDateLayout is the layout of quota expiry dates (dd.mm.yyyy). The
// expiry of a single-user quota is stored in its description.
const QuotaDateLayout = "02.01.2006"

// QuotaOperationAdd makes a quota extend the default quota instead of
// replacing it.
const QuotaOperationAdd = "+"

// QuotaUser is the user association of a quota.
type QuotaUser struct {
	User User `json:"user"`
}

// QuotaDefault is a default-quota association.
type QuotaDefault struct {
	Type string `json:"type"`
}

// Quota is a Galaxy storage quota.
type Quota struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	DisplayAmount string         `json:"display_amount"`
	Operation     string         `json:"operation,omitempty"`
	Default       []QuotaDefault `json:"default"`
	Users         []QuotaUser    `json:"users"`

	// Deleted is not part of the remote representation; it records which
	// listing (active or deleted) the quota was found in.
	Deleted bool `json:"-"`
}

// IsDefault reports whether the quota is bound to a default group.
func (q Quota) IsDefault() bool { return len(q.Default) > 0 }

// SingleUserEmail returns the email of the only user bound to the quota.
// ok is false for quotas bound to zero or several users.
func (q Quota) SingleUserEmail() (email string, ok bool) {
	if len(q.Users) != 1 {
		return "", false
	}
	return q.Users[0].User.Email, true
}

// QuotaPayload is the body of quota create and update calls.
type QuotaPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Amount      string   `json:"amount"`
	Operation   string   `json:"operation"`
	Default     string   `json:"default,omitempty"`
	InUsers     []string `json:"in_users"`
	InGroups    []string `json:"in_groups"`
}

// QuotaRequest is a line of the quota request file.
type QuotaRequest struct {
	Email   string    `validate:"required,email"`
	Amount  string    `validate:"required,galaxy_amount"`
	Expires time.Time

	// RawExpires keeps the date exactly as written in the file; it becomes
	// the quota description.
	RawExpires string
}
