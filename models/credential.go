// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Credential is a single login entry stored in a vault.
//
// The JSON field names and their order are part of the on-disk container
// format: they are written in declaration order by encoding/json and must not
// be renamed or reordered.
type Credential struct {
	// ID is an opaque identifier generated on the client side. It is unique
	// within a vault and never reused after deletion.
	ID string `json:"id"`

	// Label is the display name of the entry (e.g. "Mail").
	Label string `json:"label"`

	// Account identifies the account the password belongs to, usually an
	// email address or a username.
	Account string `json:"email"`

	// Password is the stored secret value.
	Password string `json:"password"`

	// CreatedAt is the creation time in milliseconds since the Unix epoch.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the time of the last modification in milliseconds since
	// the Unix epoch. Always >= CreatedAt.
	UpdatedAt int64 `json:"updatedAt"`
}

// CredentialDraft carries the user-editable fields of a [Credential].
// Identifiers and timestamps are assigned by the vault session.
type CredentialDraft struct {
	Label    string
	Account  string
	Password string
}

// CredentialList is an ordered sequence of credentials. Order is insertion
// order and is preserved across save/load round-trips.
type CredentialList []Credential

// Clone returns an independent copy of the list. A nil list clones to an
// empty, non-nil list.
func (l CredentialList) Clone() CredentialList {
	out := make(CredentialList, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the position of the credential with the given id, or -1.
func (l CredentialList) IndexOf(id string) int {
	return slices.IndexFunc(l, func(c Credential) bool { return c.ID == id })
}

// Contains reports whether a credential with the given id is present.
func (l CredentialList) Contains(id string) bool {
	return l.IndexOf(id) >= 0
}

// Without returns a copy of the list with the credential identified by id
// filtered out. The relative order of the remaining entries is kept.
func (l CredentialList) Without(id string) CredentialList {
	out := make(CredentialList, 0, len(l))
	for _, c := range l {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// DuplicateID returns the first identifier that occurs more than once in the
// list and true, or "" and false if all identifiers are unique.
func (l CredentialList) DuplicateID() (string, bool) {
	seen := make(map[string]struct{}, len(l))
	for _, c := range l {
		if _, ok := seen[c.ID]; ok {
			return c.ID, true
		}
		seen[c.ID] = struct{}{}
	}
	return "", false
}
