// Package mixjob runs mixer reconstructions off the caller's goroutine.
//
// A [Job] executes one reconstruction and produces exactly one [Outcome]:
// either a result or a cancellation/error, never a partial image.
//
// A [Dispatcher] serializes interactive requests. Each submission gets a new
// generation and cancels the job it supersedes; a job that finishes after
// being superseded is dropped instead of delivered.
package mixjob
