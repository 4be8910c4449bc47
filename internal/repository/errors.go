// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver error strings. ErrEmailTaken maps the MySQL
// duplicate-key error on users.email to an HTTP 409, while the
// not-found sentinels become HTTP 404 responses. Any other database
// error is logged server-side and reported to the client as a generic
// HTTP 500.
package repository

import "errors"

// ErrEmailTaken is returned when registration hits the unique index on
// users.email. Handlers should translate this into an HTTP 409 response.
var ErrEmailTaken = errors.New("email already registered")

// ErrUserNotFound is returned when a user lookup by id matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrOrderNotFound is returned when an order lookup by id matches no row.
var ErrOrderNotFound = errors.New("order not found")
