// Package common contains shared constants and sentinel errors used across
// gophauth components.
package common

import "time"

// AuthorizationHeaderName is the gRPC metadata key (and, in canonical form,
// the HTTP header) that carries the bearer token on protected calls.
const AuthorizationHeaderName = "authorization"

// BearerScheme is the literal prefix expected in front of a signed token.
const BearerScheme = "Bearer "

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = 3600 * time.Second
