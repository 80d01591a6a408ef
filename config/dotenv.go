package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"os"
)

// LoadDotEnv exports variables from an optional dotenv file. A missing file
// is not an error; an unreadable or malformed one is.
func LoadDotEnv(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load dotenv %s: %w", path, err)
	}
	return true, nil
}
