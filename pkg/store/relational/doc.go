// Package relational is the SQL side of bases: products, sales and sale
// details. It runs on database/sql with one of three drivers (Oracle through
// go-ora, PostgreSQL through lib/pq, MySQL through go-sql-driver/mysql).
//
// Everything that differs between engines lives behind Dialect: DSN
// construction, placeholder syntax, id generation, schema DDL and the mapping
// of driver errors onto pkg/errors codes. Statements are written with "?"
// placeholders and rebound to the dialect before execution.
package relational
