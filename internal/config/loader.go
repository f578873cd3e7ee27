package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/adsappeal/adsappeal/internal/model"
)

// RuleLists holds optional overrides for the scorer's keyword rules.
// Empty lists keep the built-in defaults.
type RuleLists struct {
	// PolicyKeywords overrides the policy-page keyword list.
	PolicyKeywords []string `yaml:"policy_keywords"`

	// RiskPhrases overrides the promissory risk-phrase list.
	RiskPhrases []string `yaml:"risk_phrases"`

	// FinanceTerms overrides the financial-term list.
	FinanceTerms []string `yaml:"finance_terms"`
}

// File is the on-disk profile file structure.
type File struct {
	// Profile is the business identity data.
	Profile model.BusinessProfile `yaml:"profile"`

	// Rules holds optional rule-list overrides.
	Rules RuleLists `yaml:"rules"`
}

// LoadProfile loads a profile file from the given path.
// The raw sector string is parsed into the closed Sector enum; unknown
// values fall back to "other".
func LoadProfile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided profile path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	f.Profile.Sector = model.ParseSector(f.Profile.SectorName)
	return &f, nil
}

// FindProfileFile searches for the profile file in the following order:
//  1. If explicitPath is specified, use it directly
//  2. Look for .adsappeal in the current directory
//  3. Look for profile.yaml under the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindProfileFile(explicitPath string) string {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err == nil {
			return explicitPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultProfileFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(xdg.ConfigHome, AppName, "profile.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}
