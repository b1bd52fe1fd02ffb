package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Alphabet is the set of characters a short code is drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength gives a code space of 62^6 codes.
const DefaultLength = 6

// bytes at or above this value are rejected so that every character of
// Alphabet has the same probability (248 = 4 * 62).
const maxUnbiased = 256 - 256%len(Alphabet)

// ErrInvalidLength is returned when a non-positive code length is requested.
var ErrInvalidLength = errors.New("code length must be positive")

// Func produces a candidate short code of the given length.
type Func func(length int) (string, error)

// GenerateCode returns a random code of length characters picked
// independently and uniformly from Alphabet. Codes are not guaranteed
// to be unique.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	code := make([]byte, 0, length)
	buf := make([]byte, length*2)

	for len(code) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			code = append(code, Alphabet[int(b)%len(Alphabet)])
			if len(code) == length {
				break
			}
		}
	}

	return string(code), nil
}
