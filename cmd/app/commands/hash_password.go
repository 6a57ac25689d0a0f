package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	adminService "github.com/ocial123/qr-event-app/internal/admin/service"
)

// RunHashPassword hashes an admin password with Argon2id and prints the
// "username:hash" entry ready to be appended to the admin allow-list.
// Multiple entries in ADMIN_USERS are separated by ";".
func RunHashPassword(
	credentialService adminService.CredentialService,
	logger *slog.Logger,
	writer io.Writer,
	username string,
	password string,
	format string,
) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if strings.Contains(username, ":") || strings.Contains(username, ";") {
		return fmt.Errorf("username cannot contain ':' or ';'")
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	logger.Info("hashing admin password", slog.String("username", username))

	hash, err := credentialService.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	entry := fmt.Sprintf("%s:%s", username, hash)

	// Output result based on format
	if format == "json" {
		outputHashPasswordJSON(username, entry, writer)
	} else {
		outputHashPasswordText(entry, writer)
	}

	return nil
}

// outputHashPasswordText outputs the allow-list entry in human-readable text format.
func outputHashPasswordText(entry string, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nAdd this entry to the admin allow-list (ADMIN_USERS):")
	_, _ = fmt.Fprintln(writer, entry)
}

// outputHashPasswordJSON outputs the result in JSON format for machine consumption.
func outputHashPasswordJSON(username, entry string, writer io.Writer) {
	result := map[string]string{
		"username": username,
		"entry":    entry,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
