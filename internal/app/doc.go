// Package app is the application layer - the only component that references
// multiple domain components. It orchestrates the auth and list-membership
// use cases over the user repository and token service.
package app
