package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"k8s.io/apimachinery/pkg/util/validation"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks field formats. It returns nil or ValidationErrors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if ns := c.Kubernetes.Namespace; ns != "" {
		for _, msg := range validation.IsDNS1123Label(ns) {
			add("kubernetes.namespace", msg)
		}
	}
	if c.Camel.Group == "" {
		add("camel.group", "must not be empty")
	} else {
		for _, msg := range validation.IsDNS1123Subdomain(c.Camel.Group) {
			add("camel.group", msg)
		}
	}
	if c.Camel.Version == "" {
		add("camel.version", "must not be empty")
	}
	if c.Camel.Resource == "" {
		add("camel.resource", "must not be empty")
	}
	for _, msg := range validation.IsQualifiedName(c.Camel.AppLabel) {
		add("camel.appLabel", msg)
	}
	if c.Watch.Interval != "" {
		d, err := time.ParseDuration(c.Watch.Interval)
		switch {
		case err != nil:
			add("watch.interval", err.Error())
		case d <= 0:
			add("watch.interval", "must be positive")
		}
	}
	if c.Output.Locale != "" {
		if _, err := language.Parse(c.Output.Locale); err != nil {
			add("output.locale", err.Error())
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
