// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store. Each store accepts a DBTX so it
// can operate over a plain connection pool or an externally managed
// transaction.
package postgres
