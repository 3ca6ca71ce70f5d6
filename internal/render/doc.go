// Package render writes a domain.Result to the terminal, either as a single
// JSON object or as a two-column table.
package render
