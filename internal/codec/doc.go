// Package codec converts a credential list to and from the canonical text
// form that is encrypted into passwords.enc.
//
// The form is a JSON array of objects with the fixed field order
// id, label, email, password, createdAt, updatedAt. An empty list encodes
// as "[]"; an empty artifact decodes to an empty list.
package codec
