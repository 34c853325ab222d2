package auth

import "time"

// Strategy issues and verifies caller identity tokens.
type Strategy interface {
	IssueToken(participantID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
