package index

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Schema                *string `yaml:"schema"`
	Output                *string `yaml:"output" validate:"required"`
	LayoutExtension       *string `yaml:"layout_extension" validate:"required,alphanum"`
	SourceExtension       *string `yaml:"source_extension" validate:"required,alphanum"`
	Strict                *bool   `yaml:"strict"`
	TelemetryUrl          *string `yaml:"telemetry_url" validate:"omitempty,hostname_port"`
	TelemetryOrganization *string `yaml:"telemetry_organization"`
}

// Merge copies every field set in other over r.
func (r *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Schema != nil {
		r.Schema = other.Schema
	}
	if other.Output != nil {
		r.Output = other.Output
	}
	if other.LayoutExtension != nil {
		r.LayoutExtension = other.LayoutExtension
	}
	if other.SourceExtension != nil {
		r.SourceExtension = other.SourceExtension
	}
	if other.Strict != nil {
		r.Strict = other.Strict
	}
	if other.TelemetryUrl != nil {
		r.TelemetryUrl = other.TelemetryUrl
	}
	if other.TelemetryOrganization != nil {
		r.TelemetryOrganization = other.TelemetryOrganization
	}
}

func (r *Config) Validate() error {
	err := validator.New().Struct(r)
	if err == nil {
		return nil
	}

	// * case of `validator.ValidationErrors`
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s failed on %s", fieldError.Field(), fieldError.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
	}

	return fmt.Errorf("invalid configuration: %w", err)
}
