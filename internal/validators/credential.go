package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldLabel targets the display name of an entry.
	FieldLabel = "label"

	// FieldAccount targets the account identifier (email or username).
	FieldAccount = "account"

	// FieldPassword targets the stored secret value.
	FieldPassword = "password"

	// FieldID targets the credential identifier.
	FieldID = "id"

	// FieldTimestamps targets createdAt and updatedAt together.
	FieldTimestamps = "timestamps"
)

// MaxFieldLength bounds every text field, counted in runes.
const MaxFieldLength = 4096

var draftFields = []string{FieldLabel, FieldAccount, FieldPassword}

type CredentialValidator struct{}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate accepts models.CredentialDraft and models.Credential, by value or
// pointer. With no fields a draft checks label, account and password, and a
// credential additionally checks id and timestamps.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.CredentialDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateDraft(_ context.Context, draft models.CredentialDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = draftFields
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if draft.Label == "" {
				return ErrEmptyLabel
			}
			if err := checkLength(FieldLabel, draft.Label); err != nil {
				return err
			}
		case FieldAccount:
			if err := checkLength(FieldAccount, draft.Account); err != nil {
				return err
			}
		case FieldPassword:
			if draft.Password == "" {
				return ErrEmptyPassword
			}
			if err := checkLength(FieldPassword, draft.Password); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CredentialValidator) validateCredential(ctx context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldID}, draftFields...)
		fields = append(fields, FieldTimestamps)
	}

	draft := models.CredentialDraft{Label: c.Label, Account: c.Account, Password: c.Password}
	for _, f := range fields {
		switch f {
		case FieldID:
			if c.ID == "" {
				return ErrInvalidID
			}
		case FieldTimestamps:
			if c.CreatedAt < 0 || c.UpdatedAt < c.CreatedAt {
				return fmt.Errorf("%w: created %d, updated %d", ErrInvalidTimestamps, c.CreatedAt, c.UpdatedAt)
			}
		default:
			if err := v.validateDraft(ctx, draft, f); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkLength(field, value string) error {
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return nil
}
