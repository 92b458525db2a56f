// Package errs holds the error values the HTTP layer knows how to render.
//
// Handlers and middleware return *HTTPError; the global error handler turns
// it into a response. Most errors become a JSON body with a machine-readable
// code, but an error marked Empty is written as a bare status code.
package errs

import "strings"

// MakeUpperCaseWithUnderscores turns status text into an error code:
// "Too Many Requests" becomes "TOO_MANY_REQUESTS".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
