// Package idgen generates identifiers shaped like Trello object IDs.
package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"
)

const (
	// IDLength is the number of hex characters in an object ID.
	IDLength = 24
	// timestampBytes is the size of the leading creation timestamp.
	timestampBytes = 4
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// Generate creates a new object ID: a 4-byte big-endian Unix timestamp
// followed by 8 random bytes, hex encoded.
func Generate() (string, error) {
	return generateAt(time.Now())
}

func generateAt(now time.Time) (string, error) {
	buf := make([]byte, IDLength/2)
	binary.BigEndian.PutUint32(buf[:timestampBytes], uint32(now.Unix()))
	if _, err := rand.Read(buf[timestampBytes:]); err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// MustGenerate creates a new object ID, panicking on error.
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether id has the shape of an object ID.
func Valid(id string) bool {
	return idPattern.MatchString(id)
}

// CreatedAt returns the creation time encoded in id.
func CreatedAt(id string) (time.Time, error) {
	if !Valid(id) {
		return time.Time{}, fmt.Errorf("invalid object ID: %q", id)
	}
	raw, err := hex.DecodeString(id[:timestampBytes*2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid object ID: %q", id)
	}
	return time.Unix(int64(binary.BigEndian.Uint32(raw)), 0), nil
}
