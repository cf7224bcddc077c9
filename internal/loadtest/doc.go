// Package loadtest drives a running posts server through the complete post
// lifecycle and measures the latency of every call.
//
// A run generates a batch of random posts and executes the phases create,
// get, update, list, delete and list again. Each phase fans the batch out
// over a bounded worker pool. Every response is checked against what was
// sent: a mismatch aborts the run with [ErrMismatch].
package loadtest
