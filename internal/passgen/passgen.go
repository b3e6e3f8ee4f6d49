// Package passgen generates random passwords for new credentials, with
// uniform sampling via crypto/rand.
package passgen

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits = "0123456789"
	symbol = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// Options selects the character classes to draw from.
type Options struct {
	Length  int
	Upper   bool
	Digits  bool
	Symbols bool
}

// Generate returns a random password of the requested length. Lowercase
// letters are always included; each enabled class is guaranteed at least
// one occurrence so generated passwords pass common complexity checks.
func Generate(opts Options) (string, error) {
	if opts.Length < 4 {
		return "", errors.New("password length must be at least 4")
	}

	alphabet := lower
	required := []string{lower}
	if opts.Upper {
		alphabet += upper
		required = append(required, upper)
	}
	if opts.Digits {
		alphabet += digits
		required = append(required, digits)
	}
	if opts.Symbols {
		alphabet += symbol
		required = append(required, symbol)
	}
	if len(required) > opts.Length {
		return "", errors.New("length too short for the requested character classes")
	}

	// One character per required class up front, the rest from the full
	// alphabet, then a shuffle so class characters land anywhere.
	out := make([]byte, opts.Length)
	for i := range out {
		source := alphabet
		if i < len(required) {
			source = required[i]
		}
		c, err := pick(source)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	for i := len(out) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func pick(alphabet string) (byte, error) {
	i, err := intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
