// Package domain contains the core data types for the circle search.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, browse).
package domain

// Booth is one exhibitor entry parsed from a row of the source table.
// Fandoms keep their source casing; matching against them is done on the
// lowercased form by the browse package.
type Booth struct {
	Booth       string   `json:"booth"`
	Fandoms     []string `json:"fandoms"`
	FacebookURL string   `json:"facebook_url"`
	Zone        string   `json:"zone"`
}
