// Package document keeps the users of bases in a SurrealDB collection.
//
// Store talks to a Backend, a narrow interface over the handful of SurrealQL
// statements it needs, so the store can be tested without a server. The
// production Backend wraps a surrealdb.go connection.
package document
