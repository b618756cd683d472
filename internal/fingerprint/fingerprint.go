// Package fingerprint derives stable identifiers from document content.
package fingerprint

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// namespace scopes the name-based document IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://wordpress.org/export/"))

// Checksum returns the hex xxh3 hash of content.
func Checksum(content []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(content))
}

// DocumentID returns a deterministic UUID for content.
// Byte-identical inputs always map to the same ID.
func DocumentID(content []byte) string {
	return uuid.NewSHA1(namespace, content).String()
}

// Sum returns both the document ID and checksum.
func Sum(content []byte) (id, checksum string) {
	return DocumentID(content), Checksum(content)
}
