// Package cli wires configuration flags to the HTTP server and starts it.
// The process has no other command surface.
package cli
