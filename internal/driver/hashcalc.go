package driver

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest is a SHA-256 value.
type Digest [32]byte

// cacheKey: H(content || schema || опции, влияющие на результат сканирования).
func cacheKey(content [32]byte, opts Options) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[:2], diskCacheSchemaVersion)
	_, _ = h.Write(buf[:2])
	binary.LittleEndian.PutUint64(buf[:], uint64(max(opts.MaxDiagnostics, 0)))
	_, _ = h.Write(buf[:])
	if opts.StopOnError {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
