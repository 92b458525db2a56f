// Package handler turns HTTP requests into service calls.
//
// Every endpoint is a typed function wrapped by Handle or HandleOptional,
// which bind and validate the payload, log and trace the call, and write
// the response. Handlers decide which status a failed operation maps to;
// the global error handler in package middleware renders it.
package handler
