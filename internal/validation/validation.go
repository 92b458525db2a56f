// Package validation binds HTTP requests into payload structs and checks
// them.
//
// The two failure modes are kept apart on purpose. A request that cannot be
// decoded at all (broken JSON, a path parameter that is not a number) is a
// plain error and ends up as a generic 500. A request that decodes but breaks
// a field rule is a 400 with no body; the field details only go to the log.
package validation
