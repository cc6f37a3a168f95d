package service

import (
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	if resp.Count != 1 {
		t.Errorf("expected count 1, got %d", resp.Count)
	}
	if len(resp.Passwords) != 1 {
		t.Fatalf("expected 1 password, got %d", len(resp.Passwords))
	}
	if len(resp.Passwords[0]) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Passwords[0]))
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Count:     3,
		Lowercase: boolPtr(true),
		Uppercase: boolPtr(true),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 3 {
		t.Errorf("expected count 3, got %d", resp.Count)
	}
	for _, pw := range resp.Passwords {
		if len(pw) != 32 {
			t.Errorf("expected password length 32, got %d", len(pw))
		}
		for _, c := range pw {
			if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
				t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
			}
		}
	}
}

func TestGenerate_ExclusionsApplied(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    24,
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Symbols:   boolPtr(false),
		Exclude:   "01234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Passwords[0] {
		if c < '5' || c > '9' {
			t.Errorf("unexpected character %q, want a digit in 5-9", c)
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: -1})
	if !errors.Is(err, crypto.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestGenerate_NoCharacterClasses(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrNoCharacterClass) {
		t.Fatalf("expected ErrNoCharacterClass, got %v", err)
	}
}

func TestGenerate_EmptyPool(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Symbols:   boolPtr(false),
		Exclude:   "0123456789",
	})
	if !errors.Is(err, crypto.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestGenerate_CountTooLarge(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Count: crypto.MaxCount + 1})
	if !errors.Is(err, crypto.ErrTooManyPasswords) {
		t.Fatalf("expected ErrTooManyPasswords, got %v", err)
	}
}
