// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from the
// services, so the request pipeline stays independent of the SQL dialect in
// use. Every store can be rebound to a transaction with WithTx.
package store
