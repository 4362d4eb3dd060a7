package request

// RegisterUser is the payload for creating an account.
type RegisterUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

// Login is the payload for exchanging credentials for tokens.
type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshToken is the payload for refresh and logout.
type RefreshToken struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
