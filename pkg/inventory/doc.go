// Package inventory implements the store operations behind the menu and the
// CLI: users (document store), clothing products, sales and sale details
// (relational store) and summary statistics.
//
// Services return tables and records ready for pkg/output; they never print.
package inventory
