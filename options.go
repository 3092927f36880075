// SPDX-License-Identifier: MIT

package elfloat

const panicNilFallback = "elfloat: WithFallback(nil)"

// Option configures a Parser in New.
type Option func(*options)

type options struct {
	fallback Fallback // nil means fast path only
}

func defaultOptions() options {
	return options{fallback: StdFallback}
}

// WithFallback sets the exact parser used on abstention.
// Panics if fb is nil; use WithFastPathOnly to disable the fallback.
func WithFallback(fb Fallback) Option {
	if fb == nil {
		panic(panicNilFallback)
	}

	return func(o *options) { o.fallback = fb }
}

// WithFastPathOnly disables the fallback: every literal the fast path
// cannot decide fails with ErrAbstained.
func WithFastPathOnly() Option {
	return func(o *options) { o.fallback = nil }
}
