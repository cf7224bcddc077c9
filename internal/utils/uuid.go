package utils

import "github.com/google/uuid"

// UUIDGenerator produces entity identifiers.
//
// Identifiers are random (version 4) UUIDs: 122 random bits, so two
// concurrent calls never need coordination to stay distinct, and no value is
// derived from counters or collection sizes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
