package rpc

import "time"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is the public view of a registered account. It never carries the
// password hash.
type Account struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the token with the "Bearer " prefix, ready to be
// sent back in the authorization metadata.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type CurrentRequest struct{}

type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
