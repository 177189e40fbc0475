package models

import "time"

// Account is a registered user as persisted by the credential store.
// PasswordHash is a bcrypt encoding and is never serialised to clients.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	ProfileImage string
	CreatedAt    time.Time
}

// CallerIdentity is who a verified token says the caller is. It is built
// from token claims only, so it can outlive the account until expiry.
type CallerIdentity struct {
	ID           string
	Name         string
	ProfileImage string
}
