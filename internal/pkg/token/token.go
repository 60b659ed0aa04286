// Package token generates the opaque single-use player keys handed out at
// match creation.
package token

import (
	"crypto/rand"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random alphanumeric string of length n. Bytes outside
// the largest multiple of the alphabet size are rejected and redrawn, so
// every character is equally likely.
func Generate(n int) string {
	// 248 for the 62-character alphabet.
	const limit = byte(len(alphabet) * (256 / len(alphabet)))

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand only fails when the OS entropy source is broken,
			// at which point the process cannot issue credentials at all.
			panic(err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
