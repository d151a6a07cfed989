// Package credentials holds the single configured client account.
// The plaintext password from the environment is bcrypt-hashed at
// startup and discarded; verification compares against the hash.
package credentials

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMalformed     = errors.New("invalid 'credentials' format, use 'user:pwd'")
	ErrUnknownUser   = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
)

// Parse splits a raw credentials parameter into username and password.
// The value must contain exactly one colon separator.
func Parse(raw string) (username, password string, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return "", "", ErrMalformed
	}
	return parts[0], parts[1], nil
}

// Account is the process-wide configured client, immutable after startup.
type Account struct {
	username string
	hash     []byte
}

func NewAccount(username, password string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Account{username: username, hash: hash}, nil
}

// Verify checks a username/password pair against the configured
// account. Unknown usernames and wrong passwords are distinct errors
// because they map to distinct HTTP statuses.
func (a *Account) Verify(username, password string) error {
	if username == "" || username != a.username {
		return ErrUnknownUser
	}
	if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return ErrWrongPassword
	}
	return nil
}
