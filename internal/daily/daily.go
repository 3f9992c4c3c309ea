// Package daily derives one shared board seed per UTC calendar day.
//
// Everyone who plays the daily board with the same salt and the same first
// click gets the same mine layout.
package daily

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic PRNG seed for a date using a keyed
// BLAKE2b-256(salt, YYYY-MM-DD). The salt may be at most 64 bytes.
func Seed(date time.Time, salt string) (int64, error) {
	h, err := blake2b.New256([]byte(salt))
	if err != nil {
		return 0, fmt.Errorf("daily seed: %w", err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for a PRNG seed
	return int64(binary.BigEndian.Uint64(sum[:8])), nil
}
