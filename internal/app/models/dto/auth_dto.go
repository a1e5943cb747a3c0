package dto

// LoginRequest carries the reviewer account credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"reviewer"`
	Password string `json:"password" binding:"required" example:"********"`
}

// LoginResponse returns the access token unlocking the identifiable
// tier.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
