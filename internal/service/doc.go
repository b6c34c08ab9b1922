// Package service holds the application logic between the HTTP handlers and
// the stores: read-only catalog lookups, favorite link management and the
// user listing. Services depend on narrow repository interfaces satisfied by
// the store implementations.
package service
