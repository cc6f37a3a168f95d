package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// StrengthService evaluates password strength.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check scores the given password. It never fails.
func (s *StrengthService) Check(req model.StrengthRequest) model.StrengthResponse {
	r := strength.Score(req.Password)

	return model.StrengthResponse{
		Length:       r.Length,
		HasLowercase: r.HasLowercase,
		HasUppercase: r.HasUppercase,
		HasDigits:    r.HasDigits,
		HasSymbols:   r.HasSymbols,
		Score:        r.Score,
		Band:         strength.Band(r.Score),
	}
}
