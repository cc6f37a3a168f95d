package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces one or more passwords based on the given request.
// Zero-value length and count fall back to 12 and 1; omitted class flags
// default to enabled.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		Exclude:   req.Exclude,
	}

	if opts.Length == 0 {
		opts.Length = 12
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	passwords, err := crypto.GenerateMany(opts, count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passwords: passwords,
		Length:    opts.Length,
		Count:     len(passwords),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
