// Package middleware holds the echo middleware chain: request ids, New Relic
// tracing, the request-scoped logger, request logging, CORS, secure headers,
// panic recovery, the auth rate limiter, and the global error handler that
// renders every error returned by a handler.
package middleware
