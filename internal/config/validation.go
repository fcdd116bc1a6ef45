package config

import (
	"fmt"
	"strings"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found so the operator can fix
// the whole file in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("%d configuration errors: %s", len(e), strings.Join(msgs, "; "))
}

var validTransports = map[string]bool{
	"stdio":           true,
	"streamable-http": true,
	"sse":             true,
}

// Validate checks a loaded configuration for problems that would stop
// the application from operating. It returns a ValidationErrors with
// every finding, or nil when the configuration is usable.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.LLM.APIKey == "" {
		errs = append(errs, ValidationError{Field: "llm.apiKey", Message: "missing (set it in config.yaml or via LLM_API_KEY)"})
	}
	if c.LLM.BaseURL == "" {
		errs = append(errs, ValidationError{Field: "llm.baseURL", Message: "missing"})
	}
	if c.DingTalk.ClientID == "" {
		errs = append(errs, ValidationError{Field: "dingtalk.clientID", Message: "missing (set it in config.yaml or via DINGTALK_CLIENT_ID)"})
	}
	if c.DingTalk.ClientSecret == "" {
		errs = append(errs, ValidationError{Field: "dingtalk.clientSecret", Message: "missing (set it in config.yaml or via DINGTALK_CLIENT_SECRET)"})
	}
	if len(c.Pools) == 0 {
		errs = append(errs, ValidationError{Field: "pools", Message: "at least one pool must be configured"})
	}

	seen := make(map[string]bool)
	for i, p := range c.Pools {
		field := fmt.Sprintf("pools[%d]", i)
		if p.Name == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "missing"})
		} else if seen[p.Name] {
			errs = append(errs, ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate pool name %q", p.Name)})
		}
		seen[p.Name] = true

		if p.Size <= 0 {
			errs = append(errs, ValidationError{Field: field + ".size", Message: "must be positive"})
		}
		if !validTransports[p.Server.Transport] {
			errs = append(errs, ValidationError{Field: field + ".server.transport", Message: fmt.Sprintf("unknown transport %q", p.Server.Transport)})
		}
		switch p.Server.Transport {
		case "stdio":
			if p.Server.Command == "" {
				errs = append(errs, ValidationError{Field: field + ".server.command", Message: "required for stdio transport"})
			}
		case "streamable-http", "sse":
			if p.Server.URL == "" {
				errs = append(errs, ValidationError{Field: field + ".server.url", Message: "required for remote transports"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
