package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

func New[T any](path string) (*T, error) {
	// * read config file
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	// * process template replacements
	templated := Template(bytes)

	// * parse config
	config := new(T)
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file: %w", err)
	}

	return config, nil
}

// Template replaces {{ env.NAME || fallback }} expressions. Parts are tried left to
// right; a fallback that is valid json is inlined as yaml.
func Template(bytes []byte) []byte {
	return templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * check each part
		for _, part := range strings.Split(content, "||") {
			part = strings.TrimSpace(part)
			if strings.HasPrefix(part, "env.") {
				if value := os.Getenv(strings.TrimPrefix(part, "env.")); value != "" {
					return []byte(value)
				}
			} else if part != "" {
				value, err := Nested(part)
				if err != nil {
					return []byte(part)
				}
				return []byte(value)
			}
		}

		// * no valid value found
		return []byte("")
	})
}

func Nested(value string) (string, error) {
	// * try to parse as json
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	// * convert back to yaml
	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(bytes), "\n"), nil
}
