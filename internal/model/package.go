package model

import "strings"

// InstalledPackage is one row of a `scoop export` snapshot. The whole
// snapshot is replaced on every successful export; rows are never mutated.
type InstalledPackage struct {
	Name    string
	Version string
	Source  string // bucket name, e.g. "main"
	Updated string // best-effort timestamp text
	Info    string
}

// SearchResult is one row of `scoop search` output.
type SearchResult struct {
	Name     string
	Version  string
	Source   string
	Binaries string // space-joined when a manifest lists several
}

func (p InstalledPackage) FilterValue() string {
	return p.Name + " " + p.Source
}

func (r SearchResult) FilterValue() string {
	return r.Name + " " + r.Source + " " + r.Binaries
}

// DisplaySource fills in a placeholder for packages whose bucket is unknown.
func (p InstalledPackage) DisplaySource() string {
	if strings.TrimSpace(p.Source) == "" {
		return "-"
	}
	return p.Source
}
