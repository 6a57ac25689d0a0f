package service

import (
	"fmt"
	"strings"

	"github.com/allisson/go-pwdhash"
)

// credentialService implements CredentialService using Argon2id hashing and
// an in-process allow-list parsed from configuration.
type credentialService struct {
	hasher *pwdhash.PasswordHasher
	users  map[string]string
}

// Verify compares the password against the stored Argon2id hash for username.
func (s *credentialService) Verify(username string, password string) bool {
	hashedPassword, ok := s.users[username]
	if !ok {
		return false
	}

	ok, err := s.hasher.Verify([]byte(password), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// HashPassword hashes a plain text password using Argon2id.
func (s *credentialService) HashPassword(plainPassword string) (string, error) {
	hashedPassword, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hashedPassword, nil
}

// parseAllowList parses "user:argon2id-hash;user2:argon2id-hash" pairs.
// Entries are separated by ";" because PHC argon2id strings contain both
// "$" and "," (e.g. "$argon2id$v=19$m=131072,t=4,p=4$..."); the first ":"
// splits username from hash.
func parseAllowList(allowList string) (map[string]string, error) {
	users := make(map[string]string)

	for _, entry := range strings.Split(allowList, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid admin user entry: expected username:password-hash")
		}
		// PHC strings never contain ":", so one showing up in the hash part
		// means entries were glued together with the wrong separator.
		if !strings.HasPrefix(parts[1], "$argon2id$") || strings.Contains(parts[1], ":") {
			return nil, fmt.Errorf("invalid password hash for admin user %s: expected an argon2id hash", parts[0])
		}

		username := parts[0]
		if _, exists := users[username]; exists {
			return nil, fmt.Errorf("duplicate admin user entry: %s", username)
		}
		users[username] = parts[1]
	}

	return users, nil
}

// NewCredentialService creates a CredentialService from the configured
// allow-list. An empty allow-list is valid and rejects every login.
func NewCredentialService(allowList string) (CredentialService, error) {
	users, err := parseAllowList(allowList)
	if err != nil {
		return nil, err
	}

	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		return nil, err
	}

	return &credentialService{
		hasher: hasher,
		users:  users,
	}, nil
}
