package models

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Username string    `json:"username"`
	Expires  time.Time `json:"expires"`
}

// CreateUserRequest is the payload for creating a user. The password is
// hashed before storage; GenerateApiKey requests a fresh API key.
type CreateUserRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	Enabled        bool   `json:"enabled"`
	GenerateApiKey bool   `json:"generateApiKey"`
}

// UserApiResponse is a user without credential material.
type UserApiResponse struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	ApiKey   string     `json:"apiKey,omitempty"`
	Created  *time.Time `json:"created,omitempty"`
	Enabled  bool       `json:"enabled"`
}
