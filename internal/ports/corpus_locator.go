package ports

// CorpusLocator finds a corpus root starting from an arbitrary directory.
type CorpusLocator interface {
	FindRoot(startDir string) (string, error)
}
