// Package lib holds building blocks that are not tied to one layer.
//
// ratelimit implements the Redis fixed-window counter behind the auth rate
// limiter.
package lib
