package usecase

import (
	pkgAuth "github.com/polkiloo/foodstall/internal/pkg/auth"
)

// PasswordChecker validates the shared staff password.
type PasswordChecker interface {
	Check(attempt string) error
}

// StaffUseCase handles the staff password gate and token management.
type StaffUseCase struct {
	gate   PasswordChecker
	tokens pkgAuth.Strategy
}

// NewStaffUseCase constructs StaffUseCase.
func NewStaffUseCase(gate *pkgAuth.PasswordGate, strategy pkgAuth.Strategy) *StaffUseCase {
	return newStaffUseCase(gate, strategy)
}

func newStaffUseCase(gate PasswordChecker, strategy pkgAuth.Strategy) *StaffUseCase {
	return &StaffUseCase{gate: gate, tokens: strategy}
}

// Login checks the shared password and returns a staff token.
func (u *StaffUseCase) Login(password string) (string, error) {
	if err := u.gate.Check(password); err != nil {
		return "", err
	}
	return u.tokens.IssueToken(pkgAuth.StaffSubject)
}

// ParseToken accepts only tokens issued for staff.
func (u *StaffUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	subject, err := u.tokens.ParseToken(token)
	if err != nil {
		return "", err
	}
	if subject != pkgAuth.StaffSubject {
		return "", pkgAuth.ErrInvalidToken
	}
	return subject, nil
}
