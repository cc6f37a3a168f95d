package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"

	// SymbolChars is the fixed symbol alphabet. The strength scorer checks
	// membership against the same set, so a generated symbol always counts
	// as one when scored.
	SymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MaxLength = 1024
	MaxCount  = 1000
)

var (
	ErrInvalidLength    = errors.New("password length must be at least 1")
	ErrLengthTooLong    = errors.New("password length must be at most 1024")
	ErrNoCharacterClass = errors.New("at least one character class must be enabled")
	ErrEmptyPool        = errors.New("no valid characters available after exclusions")
	ErrTooManyPasswords = errors.New("at most 1000 passwords may be generated per request")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
	Exclude   string
}

// DefaultOptions returns the defaults: 12 characters with all classes enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    12,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Generate creates a cryptographically secure random password based on the
// given options. Every character is drawn independently and uniformly from
// the pool, so repeats are possible and no class is guaranteed to appear.
func Generate(opts GeneratorOptions) (string, error) {
	pool, err := buildPool(opts)
	if err != nil {
		return "", err
	}
	return sample(pool, opts.Length)
}

// GenerateMany creates count passwords with identical options. Validation
// happens once, before any password is produced; a non-positive count yields
// an empty slice.
func GenerateMany(opts GeneratorOptions, count int) ([]string, error) {
	if count > MaxCount {
		return nil, ErrTooManyPasswords
	}

	pool, err := buildPool(opts)
	if err != nil {
		return nil, err
	}

	passwords := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		pw, err := sample(pool, opts.Length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// buildPool validates the options and assembles the character pool: enabled
// alphabets concatenated in a fixed order, minus the excluded characters.
func buildPool(opts GeneratorOptions) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	var pool string
	if opts.Lowercase {
		pool += lowercaseChars
	}
	if opts.Uppercase {
		pool += uppercaseChars
	}
	if opts.Digits {
		pool += digitChars
	}
	if opts.Symbols {
		pool += SymbolChars
	}

	if pool == "" {
		return "", ErrNoCharacterClass
	}

	if opts.Exclude != "" {
		var kept strings.Builder
		kept.Grow(len(pool))
		for _, c := range pool {
			if !strings.ContainsRune(opts.Exclude, c) {
				kept.WriteRune(c)
			}
		}
		pool = kept.String()
	}

	if pool == "" {
		return "", ErrEmptyPool
	}

	return pool, nil
}

// sample draws length characters uniformly with replacement from pool.
func sample(pool string, length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		sb.WriteByte(ch)
	}
	return sb.String(), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
