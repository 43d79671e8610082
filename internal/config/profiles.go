package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile tunes extraction and fetching for one documentation host. Sites
// with unusual markup can name their own content wrappers here instead of
// relying on the built-in selector list.
type Profile struct {
	// ContainerSelectors are tried before the built-in container selectors.
	ContainerSelectors []string `yaml:"containerSelectors,omitempty"`

	// RemoveSelectors are stripped as boilerplate in addition to the
	// built-in set.
	RemoveSelectors []string `yaml:"removeSelectors,omitempty"`

	// Headers are extra HTTP headers sent with every request to the site.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// Profiles is the structure of a site-profile YAML file.
type Profiles struct {
	// Sites maps a host (e.g. "docs.example.com") to its profile.
	Sites map[string]Profile `yaml:"sites,omitempty"`

	// Defaults applies to every host unless overridden per site.
	Defaults Profile `yaml:"defaults,omitempty"`
}

// LoadProfiles reads a site-profile file.
func LoadProfiles(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var p Profiles
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}
	if p.Sites == nil {
		p.Sites = make(map[string]Profile)
	}
	return &p, nil
}

// For returns the profile for host, merging site-specific settings over the
// defaults.
func (p *Profiles) For(host string) Profile {
	result := p.Defaults
	result.Headers = maps.Clone(result.Headers)

	site, ok := p.Sites[host]
	if !ok {
		return result
	}
	if len(site.ContainerSelectors) > 0 {
		result.ContainerSelectors = site.ContainerSelectors
	}
	if len(site.RemoveSelectors) > 0 {
		result.RemoveSelectors = site.RemoveSelectors
	}
	if len(site.Headers) > 0 {
		if result.Headers == nil {
			result.Headers = make(map[string]string)
		}
		for k, v := range site.Headers {
			result.Headers[k] = v
		}
	}
	return result
}
