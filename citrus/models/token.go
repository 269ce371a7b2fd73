package models

import "time"

// AccessToken is the result of an OAuth password-grant exchange for a payer.
// It is not refreshed by this library; callers cache and re-exchange as
// needed.
type AccessToken struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresIn    int
	Scopes       []string
	ReceivedAt   time.Time
}

// ExpiresAt returns the instant the token stops being usable.
func (t *AccessToken) ExpiresAt() time.Time {
	return t.ReceivedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Valid reports whether the token is still usable at the given instant.
func (t *AccessToken) Valid(at time.Time) bool {
	return t.AccessToken != "" && at.Before(t.ExpiresAt())
}
