package licensor

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/licensor/classification"
	"github.com/viant/licensor/exclude"
	"github.com/viant/licensor/policy"
	"gopkg.in/yaml.v3"
)

const defaultWorkers = 4

// Config is a serialisable representation of the evaluation settings, it can be
// loaded from YAML or JSON with LoadConfig.
type Config struct {
	// Classifications is the license classification document URL
	Classifications string `json:"classifications,omitempty" yaml:"classifications,omitempty"`
	// Categories names the allowed and review categories of the classification document
	Categories Categories `json:"categories" yaml:"categories"`
	// Workers is the number of packages evaluated concurrently
	Workers int `json:"workers" yaml:"workers"`

	Policy *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	// Excludes are CEL expressions over "pkg" excluding matching packages
	Excludes []string `json:"excludes,omitempty" yaml:"excludes,omitempty"`
	// PathExcludes are glob patterns excluding license locations
	PathExcludes []string `json:"pathExcludes,omitempty" yaml:"pathExcludes,omitempty"`

	DeclaredLicenseMapping map[string]string `json:"declaredLicenseMapping,omitempty" yaml:"declaredLicenseMapping,omitempty"`
	// ReportURL is a base URL where reports are stored, in memory when empty
	ReportURL string `json:"reportURL,omitempty" yaml:"reportURL,omitempty"`
}

// Categories names classification categories
type Categories struct {
	Allow  string `json:"allow" yaml:"allow"`
	Review string `json:"review" yaml:"review"`
}

// DefaultConfig returns a Config populated with default values
func DefaultConfig() *Config {
	return &Config{
		Categories: Categories{
			Allow:  classification.CategoryAllow,
			Review: classification.CategoryReview,
		},
		Workers: defaultWorkers,
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be > 0"))
	}
	if c.Categories.Allow == "" || c.Categories.Review == "" {
		errs = append(errs, fmt.Errorf("categories.allow and categories.review are required"))
	} else if c.Categories.Allow == c.Categories.Review {
		errs = append(errs, fmt.Errorf("categories.allow and categories.review must differ: %q", c.Categories.Allow))
	}
	if err := c.Policy.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := exclude.NewPackages(c.Excludes...); err != nil {
		errs = append(errs, err)
	}
	if _, err := exclude.NewPaths(c.PathExcludes...); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadConfig loads YAML or JSON config from URL, ${env.KEY} expressions are
// expanded before decoding. Unset fields keep DefaultConfig values.
func LoadConfig(ctx context.Context, fs afs.Service, URL string, options ...storage.Option) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal([]byte(expandEnv(string(data))), ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
