package domain

// Config represents the minimal smtcat configuration loaded from smtcat.yaml.
type Config struct {
	Validate ValidateConfig
	Paths    PathsConfig
}

type ValidateConfig struct {
	// RequireMetadata flags records missing the version-metadata block
	// (:smt-lib-version, :written-by, :date) as validation warnings.
	RequireMetadata bool
}

type PathsConfig struct {
	LogicsDir   string
	TheoriesDir string
	DocsDir     string
}

// DefaultConfig provides sane defaults if smtcat.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Validate: ValidateConfig{RequireMetadata: true},
		Paths: PathsConfig{
			LogicsDir:   "logics",
			TheoriesDir: "theories",
			DocsDir:     "docs",
		},
	}
}

// CorpusSpec describes a corpus root to initialize.
type CorpusSpec struct {
	Root string
}
