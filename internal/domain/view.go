package domain

// ViewEntry is one visited view in the navigation ledger. Entries are never
// mutated after creation, only removed.
type ViewEntry struct {
	Path      string
	Title     string
	Name      string
	Closeable bool
	FullPath  string
}

// HomeEntry is the permanent dashboard entry. It is the only entry with
// Closeable=false and always occupies index 0 of a non-empty ledger.
func HomeEntry() ViewEntry {
	return ViewEntry{
		Path:      HomePath,
		Title:     "Dashboard",
		Name:      "Dashboard",
		Closeable: false,
		FullPath:  HomePath,
	}
}

// View is the input to a ledger addition: the admitted route flattened
// together with the full path the user actually requested.
type View struct {
	Path     string
	Title    string
	Name     string
	FullPath string
}
