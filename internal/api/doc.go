// Package api handles incoming HTTP requests for the catalog, user and
// favorite endpoints. Handlers parse path ids and JSON bodies, call the
// services and translate their errors into status codes, error kinds and
// messages that are safe to show to clients.
package api
