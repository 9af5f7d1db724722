package types

import "time"

// File is one indexed file row. Symbols, parents and refs hang off it
// and are replaced atomically whenever the content fingerprint changes.
type File struct {
	ID    int64
	Path  string
	Hash  string
	MTime time.Time
}

// SearchResult is a symbol joined with its file path, as returned by
// symbol lookups and the unused-symbol analysis.
type SearchResult struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Line      int    `json:"line"`
	Signature string `json:"signature"`
	Path      string `json:"path"`
}
