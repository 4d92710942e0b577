// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Encode serializes list into its canonical JSON form. A nil or empty list
// encodes as "[]". Lists that break the vault invariants (unique IDs,
// updatedAt >= createdAt) are rejected rather than persisted.
func Encode(list models.CredentialList) ([]byte, error) {
	if err := check(list); err != nil {
		return nil, err
	}
	if list == nil {
		list = models.CredentialList{}
	}

	out, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshal credentials: %w", err)
	}
	return out, nil
}

// Decode parses the canonical JSON form produced by [Encode].
//
// Empty (or whitespace-only) input and a JSON null decode to an empty list:
// a vault without data is a valid, empty vault. Anything else that is not a
// JSON array of credential objects, or that breaks the vault invariants,
// fails with [ErrCorruptContainer].
func Decode(data []byte) (models.CredentialList, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.CredentialList{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptContainer, err)
	}
	// Only whitespace may follow the array.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after credential list", ErrCorruptContainer)
	}
	if raw == nil {
		return models.CredentialList{}, nil
	}

	list := make(models.CredentialList, 0, len(raw))
	for i, item := range raw {
		// A null element would unmarshal into a zero record.
		if !bytes.HasPrefix(bytes.TrimSpace(item), []byte("{")) {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrCorruptContainer, i)
		}
		var c models.Credential
		if err := json.Unmarshal(item, &c); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrCorruptContainer, i, err)
		}
		list = append(list, c)
	}

	if err := check(list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptContainer, err)
	}

	return list, nil
}

func check(list models.CredentialList) error {
	if id, dup := list.DuplicateID(); dup {
		return fmt.Errorf("%w: %q", ErrDuplicateIdentifier, id)
	}
	for _, c := range list {
		if c.UpdatedAt < c.CreatedAt {
			return fmt.Errorf("%w: %q", ErrInvalidTimestamps, c.ID)
		}
	}
	return nil
}
