// Package http implements the REST transport of the posts server.
//
// It wires the posts and users resource groups onto a chi router and puts
// cross-cutting middleware in front of them: trace ids, access logging,
// request metrics, panic recovery, response compression and the bearer
// token gate of protected routes.
//
// Handlers talk to storage only through the route-local state of their
// resource group. The gate talks only to the global state.
package http
