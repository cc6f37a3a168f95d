package model

// StrengthRequest carries the password to evaluate. Any string is accepted,
// including empty.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the scored report plus its qualitative band.
type StrengthResponse struct {
	Length       int    `json:"length"`
	HasLowercase bool   `json:"has_lowercase"`
	HasUppercase bool   `json:"has_uppercase"`
	HasDigits    bool   `json:"has_digits"`
	HasSymbols   bool   `json:"has_symbols"`
	Score        int    `json:"score"`
	Band         string `json:"band"`
}
