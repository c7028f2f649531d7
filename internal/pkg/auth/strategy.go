package auth

import "time"

// StaffSubject is the only subject tokens are issued for.
const StaffSubject = "staff"

type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
