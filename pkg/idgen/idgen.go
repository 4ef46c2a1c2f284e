package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces identifiers for newly stored records.
type Generator interface {
	NewID() string
}

// UUIDGenerator returns random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// namespace scopes deterministic ids to this application.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("cie-dashboard"))

// Deterministic returns a stable v5 UUID for parts. Imported records use it so
// re-fetching the same upstream item yields the same id.
func Deterministic(parts ...string) string {
	return uuid.NewSHA1(namespace, []byte(strings.Join(parts, "\x1f"))).String()
}
