// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic: the catalog is read-only, users are read
// (and written only by the seed loader), and favorite links are inserted,
// listed and deleted per kind.
package store
