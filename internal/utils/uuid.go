// Package utils provides small helpers shared by the vault services:
// identifier generation and session token signing and validation.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces credential and session identifiers. Identifiers
// are time-ordered UUIDv7 strings; if the v7 generator fails a random v4 is
// returned instead.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
