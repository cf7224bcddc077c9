// Package state holds the provider handles shared by the HTTP layer.
//
// All values are built once at startup and never replaced. [Global] is the
// handle consulted by the authorization gate; [Posts] and [Users] are the
// route-local handles of each resource group. Handles are interfaces, so
// copies share the provider they point at.
package state
