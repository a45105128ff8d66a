// Package auth verifies bearer credentials issued by the external
// identity provider and exposes the permission checks built on the
// verified claims. It owns the full token pipeline: header extraction,
// JWKS-backed signature validation, claim checks, and permission
// membership tests.
package auth
