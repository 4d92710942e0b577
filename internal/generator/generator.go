// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords for new credentials and rates
// password strength.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"
)

// Character classes.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Special   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// MaxLength bounds Options.Length.
const MaxLength = 1024

var (
	// ErrInvalidLength is returned when the requested length is not in
	// 1..MaxLength and no custom word is given.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrRandomSource is returned when the system random source fails.
	ErrRandomSource = errors.New("random source failure")
)

// Options selects the length and alphabet of a generated password.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Special   bool

	// CustomWord is placed into the password and shuffled together with the
	// random characters. A word at least Length long is returned as is.
	CustomWord string
}

// Alphabet returns the characters a password is drawn from. No class
// selected means lowercase letters and digits.
func (o Options) Alphabet() string {
	var b strings.Builder
	if o.Uppercase {
		b.WriteString(Uppercase)
	}
	if o.Lowercase {
		b.WriteString(Lowercase)
	}
	if o.Digits {
		b.WriteString(Digits)
	}
	if o.Special {
		b.WriteString(Special)
	}
	if b.Len() == 0 {
		return Lowercase + Digits
	}
	return b.String()
}

// Generate returns a new password built from opts using crypto/rand.
func Generate(opts Options) (string, error) {
	return generate(opts, rand.Reader)
}

func generate(opts Options, random io.Reader) (string, error) {
	if opts.Length > MaxLength || (opts.Length <= 0 && opts.CustomWord == "") {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, opts.Length)
	}

	alphabet := opts.Alphabet()
	word := []rune(opts.CustomWord)
	remaining := opts.Length - utf8.RuneCountInString(opts.CustomWord)
	if remaining <= 0 {
		return opts.CustomWord, nil
	}

	out := make([]rune, 0, len(word)+remaining)
	out = append(out, word...)
	for range remaining {
		i, err := randIndex(random, len(alphabet))
		if err != nil {
			return "", err
		}
		out = append(out, rune(alphabet[i]))
	}

	if len(word) > 0 {
		// Fisher-Yates
		for i := len(out) - 1; i > 0; i-- {
			j, err := randIndex(random, i+1)
			if err != nil {
				return "", err
			}
			out[i], out[j] = out[j], out[i]
		}
	}

	return string(out), nil
}

func randIndex(random io.Reader, n int) (int, error) {
	v, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}
