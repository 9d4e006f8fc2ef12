package fscorpus

import "embed"

// Seed files copied into a freshly initialized corpus.
//
//go:embed templates
var templatesFS embed.FS
