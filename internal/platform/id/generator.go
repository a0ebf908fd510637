// Package id issues opaque public identifiers for ingested records that
// arrive without one.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// idBytes gives 128 bits of entropy, enough that collisions across
// competitions are not a practical concern.
const idBytes = 16

type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces hex-encoded random identifiers.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
