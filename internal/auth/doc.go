// Package auth implements password hashing and stateless bearer-token handling.
//
// Passwords use bcrypt with a fixed work factor. Tokens are HS256 JWTs carrying
// the user id in the standard "sub" claim; there is no server-side session or
// revocation list, so a token stays valid until its expiry; logout happens
// client-side.
package auth
