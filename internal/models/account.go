package models

import "strings"

// Account is the single administrator record the service authenticates against.
// It is built once at startup and never mutated.
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this to the client
}

// NewAccount returns an Account with its username normalized for lookup.
func NewAccount(username, passwordHash string) Account {
	return Account{
		Username:     NormalizeUsername(username),
		PasswordHash: passwordHash,
	}
}

// NormalizeUsername lowercases a username so comparisons are case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}

// Verdict is the outcome of a successful credential check.
type Verdict struct {
	Authenticated bool
	Username      string
}
