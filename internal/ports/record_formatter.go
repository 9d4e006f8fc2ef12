package ports

// RecordFormatter rewrites record files into canonical form. With write
// false the file is left untouched (check mode).
type RecordFormatter interface {
	FormatLogicFile(path string, write bool) (changed bool, err error)
	FormatTheoryFile(path string, write bool) (changed bool, err error)
}
