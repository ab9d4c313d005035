package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing over a pool of reusable hash
// instances, so hot paths such as request integrity checks do not allocate
// a new HMAC per call. A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	mac := h.HexSum(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum computes an HMAC-SHA256 digest over data using a pooled hash.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HexSum is Sum encoded as lowercase hex.
func (h *Hasher) HexSum(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether hexMAC is the hex HMAC of data. The comparison is
// constant time.
func (h *Hasher) Verify(data []byte, hexMAC string) bool {
	want, err := hex.DecodeString(hexMAC)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), want)
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher], this function creates a new HMAC instance on each call.
// Suitable for one-off hashing where a pool is not worth keeping.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
