// Package buffer provides a reusable 2-D accumulator buffer and pool.
//
// Mixing allocates two full-size accumulators per invocation. Acquiring them
// from a [Pool] and releasing them with defer keeps repeated mixes of the
// same image size allocation-free and guarantees release on every exit path,
// including cancellation.
package buffer
