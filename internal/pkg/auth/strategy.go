package auth

import "time"

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
