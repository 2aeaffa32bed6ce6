// Package hash computes content fingerprints for measurement files.
package hash

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Hex formats a fingerprint as a fixed-width lowercase hex string.
func Hex(sum uint64) string {
	s := strconv.FormatUint(sum, 16)
	for len(s) < 16 {
		s = "0" + s
	}

	return s
}
