// Package secrets resolves credentials such as the database URL.
package secrets

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Source describes where a secret may come from. File wins over Value, and
// Value wins over Env.
type Source struct {
	// Name is used in error messages.
	Name string
	// Value is an inline secret from configuration or flags.
	Value string
	// File points to a file holding the secret, e.g. a mounted Docker secret.
	File string
	// Env names an environment variable consulted last.
	Env string
}

// Load returns the trimmed secret from the first populated location.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if secret := strings.TrimSpace(os.Getenv(env)); secret != "" {
			return secret, nil
		}
	}

	return "", fmt.Errorf("%s is not configured", name)
}

// RedactURL hides the password of a connection URL so it can be logged.
// Values that do not parse as URLs are fully masked.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "****"
	}
	return u.Redacted()
}
