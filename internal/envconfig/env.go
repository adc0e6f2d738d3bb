package envconfig

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Get returns the value of the requested environment variable or the supplied fallback when empty.
func Get(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return fallback
}

// GetInt reads an integer environment variable, falling back when the
// variable is unset, malformed, or non-positive.
func GetInt(name string, fallback int) int {
	raw := strings.TrimSpace(Get(name, ""))
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}

// Validate validates a struct using validator tags.
func Validate(v any) error {
	return validate.Struct(v)
}
