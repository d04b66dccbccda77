package loader

// NameIndex maps a director or genre name to the id the database assigned it.
// Names match exactly; no case folding or normalization beyond trimming.
type NameIndex map[string]int64

// Lookup returns the id recorded for name.
func (ix NameIndex) Lookup(name string) (int64, bool) {
	id, ok := ix[name]
	return id, ok
}

// Has reports whether name has been recorded.
func (ix NameIndex) Has(name string) bool {
	_, ok := ix[name]
	return ok
}
