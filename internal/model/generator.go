package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int    `json:"length"`
	Count     int    `json:"count"`
	Lowercase *bool  `json:"lowercase"`
	Uppercase *bool  `json:"uppercase"`
	Digits    *bool  `json:"digits"`
	Symbols   *bool  `json:"symbols"`
	Exclude   string `json:"exclude"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
	Count     int      `json:"count"`
}
