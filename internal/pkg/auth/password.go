package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
)

// PasswordHasher defines hashing strategy for the shared staff password.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher uses bcrypt to hash passwords.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost; zero means bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(encoded), nil
}

// Compare reports ErrInvalidCredentials on mismatch and passes other bcrypt failures through.
func (h *BcryptHasher) Compare(hash string, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domainErrors.ErrInvalidCredentials
	}
	return err
}

// PasswordGate checks attempts against one shared password that is only kept hashed.
type PasswordGate struct {
	hasher PasswordHasher
	hash   string
}

// NewPasswordGate hashes plain once so the clear text can be dropped.
func NewPasswordGate(hasher PasswordHasher, plain string) (*PasswordGate, error) {
	if plain == "" {
		return nil, errors.New("empty staff password")
	}
	hash, err := hasher.Hash(plain)
	if err != nil {
		return nil, err
	}
	return &PasswordGate{hasher: hasher, hash: hash}, nil
}

// Check returns nil when attempt matches the shared password.
func (g *PasswordGate) Check(attempt string) error {
	if attempt == "" {
		return domainErrors.ErrInvalidCredentials
	}
	return g.hasher.Compare(g.hash, attempt)
}
