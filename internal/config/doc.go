// Package config loads and validates the bridge's YAML configuration.
//
// Configuration is read from config.yaml inside a configuration
// directory (the user-level default or one supplied with --config-path).
// A missing file yields working defaults with credentials pulled from
// the environment (LLM_API_KEY, DINGTALK_CLIENT_ID,
// DINGTALK_CLIENT_SECRET); a malformed file is an error.
//
// Validate collects every problem in one pass so operators can fix the
// whole file at once instead of replaying failures one field at a time.
package config
