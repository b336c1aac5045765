package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a SHA-256 sum; source.File.Hash converts to it directly.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Combine hashes base followed by parts, in the order given.
func Combine(base Digest, parts ...Digest) Digest {
	buf := make([]byte, 0, len(base)*(1+len(parts)))
	buf = append(buf, base[:]...)
	for _, p := range parts {
		buf = append(buf, p[:]...)
	}
	return sha256.Sum256(buf)
}
