package domain

import "time"

// IndexEntry is one record's row in a generated corpus index.
type IndexEntry struct {
	Name    string
	Path    string // relative to the corpus root
	Summary string
}

// CorpusIndex is the distilled view of a corpus that the index artifact
// (docs/index.md) is rendered from.
type CorpusIndex struct {
	Root        string
	GeneratedAt time.Time

	Logics   []IndexEntry
	Theories []IndexEntry
}
