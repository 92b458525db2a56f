// Package service is the layer between handlers and repositories.
//
// The account and message rules live in the repositories, which own the
// data, so the services here delegate. Handlers only ever see services.
package service
