package game

import (
	"crypto/rand"
	"strings"
)

// codeAlphabet avoids easily-confused characters (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultCodeLength matches the original mobile client's 6-character codes.
const DefaultCodeLength = 6

// GenerateCode returns a random join code of the given length. It is
// not cryptographically uniform (modulo bias) and collisions are
// possible; callers must rely on the store's unique constraint and
// retry on conflict.
func GenerateCode(length int) string {
	if length <= 0 {
		length = DefaultCodeLength
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return strings.Repeat("A", length)
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf)
}

// ValidCode reports whether code is non-empty and drawn entirely from
// the join-code alphabet.
func ValidCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(codeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
