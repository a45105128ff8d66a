// Package api handles incoming HTTP requests, routing, request validation,
// and response shaping for the auto and buyer endpoints. It delegates
// persistence to the store interfaces and normalizes every failure into
// the standard error envelope.
package api
