// Package database provides PostgreSQL connectivity and repositories.
//
// Uses pgx for connection pooling and inline idempotent migrations.
// UserRepo implements domain.UserRepository; list membership mutations are
// single atomic UPDATE statements so concurrent requests for the same user
// cannot lose updates.
package database
