// Package auth implements the simulated login gate: any credentials
// yield an opaque token persisted to a local file, and commands that
// touch transaction data require the token to be present. This is an
// access gate, not identity or authorization.
package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/uuid/v5"
)

// Login accepts any non-empty credentials, mints an opaque token, and
// writes it to the token file.
func Login(path, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("username and password are required")
	}

	uid, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	token := "token-" + uid.String()

	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing token: %w", err)
	}
	return token, nil
}

// Token returns the stored token, if any.
func Token(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

// Logout removes the stored token. Logging out when not logged in is
// not an error.
func Logout(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
