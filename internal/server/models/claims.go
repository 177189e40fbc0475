package models

import "time"

// TokenClaims are the facts carried inside a signed token. ExpiresAt is
// always IssuedAt plus the fixed token lifetime; both have second resolution.
type TokenClaims struct {
	SubjectID    string
	Name         string
	ProfileImage string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// Identity returns the caller identity encoded by the claims.
func (c TokenClaims) Identity() CallerIdentity {
	return CallerIdentity{ID: c.SubjectID, Name: c.Name, ProfileImage: c.ProfileImage}
}
