package corpusfinder

import (
	"os"
	"path/filepath"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads smtcat.yaml from the corpus root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "smtcat.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "corpusfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "corpusfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Smtcat.Validate.RequireMetadata != nil {
		cfg.Validate.RequireMetadata = *y.Smtcat.Validate.RequireMetadata
	}
	if y.Smtcat.Paths.LogicsDir != "" {
		cfg.Paths.LogicsDir = y.Smtcat.Paths.LogicsDir
	}
	if y.Smtcat.Paths.TheoriesDir != "" {
		cfg.Paths.TheoriesDir = y.Smtcat.Paths.TheoriesDir
	}
	if y.Smtcat.Paths.DocsDir != "" {
		cfg.Paths.DocsDir = y.Smtcat.Paths.DocsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Smtcat struct {
		Validate struct {
			RequireMetadata *bool `yaml:"require_metadata"`
		} `yaml:"validate"`

		Paths struct {
			LogicsDir   string `yaml:"logics_dir"`
			TheoriesDir string `yaml:"theories_dir"`
			DocsDir     string `yaml:"docs_dir"`
		} `yaml:"paths"`
	} `yaml:"smtcat"`
}
