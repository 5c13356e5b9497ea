// Package types defines the data handed to the console renderers: the closed
// Value union, tabular results (Table, Column, Row) and ordered key/value
// documents (Record).
//
// Store adapters convert driver values into this model before anything is
// rendered, so the renderers never inspect arbitrary Go types.
package types
