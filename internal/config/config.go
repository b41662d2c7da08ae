// Package config handles .pushchain-mcp.yaml configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the expected config file name in the working directory.
const FileName = ".pushchain-mcp.yaml"

// Defaults applied when the config file omits a value.
const (
	DefaultCharacterLimit   = 25000
	DefaultContentThreshold = 5
	DefaultCacheTTL         = 24 * time.Hour
	DefaultDocsRepo         = "push-protocol/push-chain-docs"
	DefaultDocsRepoDir      = "docs"
)

// Config represents the contents of a .pushchain-mcp.yaml file. All inputs
// are read once at startup.
type Config struct {
	// DocsPath is the docs cache directory (best-effort data).
	DocsPath string `yaml:"docs_path,omitempty"`

	// SDKPath is the SDK checkout root containing packages/ (required data).
	SDKPath string `yaml:"sdk_path,omitempty"`

	// CharacterLimit is the hard ceiling on serialized response text.
	CharacterLimit int `yaml:"character_limit,omitempty"`

	// ContentSearchThreshold widens doc search to content (and the remote
	// fallback) when fewer hits than this are found.
	ContentSearchThreshold int `yaml:"content_search_threshold,omitempty"`

	// CacheTTL bounds how long a docs snapshot is considered fresh.
	// A Go duration string such as "24h" or "30m".
	CacheTTL string `yaml:"cache_ttl,omitempty"`

	// DocsRepo is the upstream documentation repository, "owner/name".
	DocsRepo string `yaml:"docs_repo,omitempty"`

	// DocsRepoDir is the directory within DocsRepo holding the docs tree.
	DocsRepoDir string `yaml:"docs_repo_dir,omitempty"`

	// RemoteFallback enables the upstream search fallback for search_docs.
	RemoteFallback bool `yaml:"remote_fallback,omitempty"`

	// StrictProtocolErrors raises typed protocol errors instead of in-band
	// error envelopes for validation and unknown-name failures.
	StrictProtocolErrors bool `yaml:"strict_protocol_errors,omitempty"`
}

// Load reads the config file from dir. A missing file yields a Config with
// defaults and nil error; a malformed file is an error.
func Load(dir string) (*Config, error) {
	cfg := &Config{}
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // operator-provided dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DocsPath == "" {
		c.DocsPath = "data/docs"
	}
	if c.SDKPath == "" {
		c.SDKPath = "data/sdk"
	}
	if c.CharacterLimit <= 0 {
		c.CharacterLimit = DefaultCharacterLimit
	}
	if c.ContentSearchThreshold <= 0 {
		c.ContentSearchThreshold = DefaultContentThreshold
	}
	if c.DocsRepo == "" {
		c.DocsRepo = DefaultDocsRepo
	}
	if c.DocsRepoDir == "" {
		c.DocsRepoDir = DefaultDocsRepoDir
	}
}

// TTL parses CacheTTL, falling back to the default for empty or malformed
// values.
func (c *Config) TTL() time.Duration {
	if c.CacheTTL == "" {
		return DefaultCacheTTL
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return DefaultCacheTTL
	}
	return d
}

// GitHubToken returns the optional bearer credential for the upstream
// documentation source.
func GitHubToken() string {
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}
	return os.Getenv("GH_TOKEN")
}
