package model

// Ledger is the ordered set of file paths that were already annotated.
// The zero value is an empty ledger ready to use.
type Ledger struct {
	paths []string
	index map[string]struct{}
}

// NewLedger builds a ledger from paths, dropping duplicates and empty entries.
func NewLedger(paths ...string) Ledger {
	var l Ledger
	for _, p := range paths {
		l.Add(p)
	}

	return l
}

// Contains reports whether path is recorded.
func (l *Ledger) Contains(path string) bool {
	_, ok := l.index[path]
	return ok
}

// Add records path and reports whether it was new.
func (l *Ledger) Add(path string) bool {
	if path == "" || l.Contains(path) {
		return false
	}

	if l.index == nil {
		l.index = make(map[string]struct{})
	}

	l.index[path] = struct{}{}
	l.paths = append(l.paths, path)

	return true
}

// Paths returns the recorded paths in insertion order.
func (l *Ledger) Paths() []string {
	out := make([]string, len(l.paths))
	copy(out, l.paths)

	return out
}

// Len returns the number of recorded paths.
func (l *Ledger) Len() int {
	return len(l.paths)
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() Ledger {
	return NewLedger(l.paths...)
}
