// Package config holds the runtime configuration for adsappeal: CLI-level
// settings, the business profile file and the optional rule-list overrides.
//
// The profile file is YAML, searched for as ".adsappeal" in the current
// directory and then under the XDG config directory. "adsappeal init"
// writes a commented template.
package config
