// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of vault outcomes.
//
// All Msg* constants are human-readable strings shown to the person using
// the vault. Every vault error kind has its own message, so a wrong master
// secret, a damaged vault file and a failed disk write never read the same.
package app

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

const (
	// MsgAlreadyInitialized is shown when a master key is requested for a
	// folder that already holds one.
	MsgAlreadyInitialized = "this folder already contains a vault, unlock it with its master key"

	// MsgNotInitialized is shown when the chosen folder holds no vault.
	MsgNotInitialized = "no vault found in this folder, create a new one first"

	// MsgInvalidSecret is shown when the master key does not match.
	MsgInvalidSecret = "wrong master key"

	// MsgCorruptVault is shown when the password file cannot be read back
	// with the correct master key.
	MsgCorruptVault = "the vault file is damaged and cannot be decrypted"

	// MsgWriteFailed is shown when saving to disk fails. Nothing was lost:
	// the previous vault file is intact.
	MsgWriteFailed = "couldn't write to disk, your previous vault is unchanged"

	// MsgCredentialNotFound is shown when an entry no longer exists.
	MsgCredentialNotFound = "password entry not found"

	MsgSessionClosed  = "the vault is locked"
	MsgSessionExpired = "the session has expired, unlock the vault again"
	MsgSessionInvalid = "the session is no longer valid, unlock the vault again"

	// MsgFolderNotRemembered is shown when there is no remembered folder to
	// reopen, or it has been moved or deleted.
	MsgFolderNotRemembered = "no remembered vault folder, please choose one"

	MsgHandleCacheDisabled = "remembering the vault folder is turned off"

	// MsgFolderUnavailable is shown when the chosen path is missing or is
	// not a directory.
	MsgFolderUnavailable = "the selected folder is not available"

	MsgInvalidPasswordLength = "password length is out of range"

	MsgLabelRequired    = "please enter a name for this entry"
	MsgPasswordRequired = "please enter a password"
	MsgFieldTooLong     = "the entry is too long"

	// MsgUnexpectedError is the fallback for errors without their own
	// message.
	MsgUnexpectedError = "unexpected error"
)

// messages is checked in order; the first match wins.
var messages = []struct {
	err error
	msg string
}{
	{service.ErrAlreadyInitialized, MsgAlreadyInitialized},
	{service.ErrNotInitialized, MsgNotInitialized},
	{service.ErrInvalidSecret, MsgInvalidSecret},
	{service.ErrCorruptVault, MsgCorruptVault},
	{service.ErrWriteFailed, MsgWriteFailed},
	{service.ErrCredentialNotFound, MsgCredentialNotFound},
	{service.ErrSessionExpired, MsgSessionExpired},
	{service.ErrSessionInvalid, MsgSessionInvalid},
	{service.ErrSessionClosed, MsgSessionClosed},
	{service.ErrFolderNotRemembered, MsgFolderNotRemembered},
	{service.ErrHandleCacheDisabled, MsgHandleCacheDisabled},
	{store.ErrFolderNotFound, MsgFolderUnavailable},
	{store.ErrNotADirectory, MsgFolderUnavailable},
	{generator.ErrInvalidLength, MsgInvalidPasswordLength},
	{validators.ErrEmptyLabel, MsgLabelRequired},
	{validators.ErrEmptyPassword, MsgPasswordRequired},
	{validators.ErrFieldTooLong, MsgFieldTooLong},
}

// MessageFor returns the user-visible message for err, or "" for nil.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgUnexpectedError
}
